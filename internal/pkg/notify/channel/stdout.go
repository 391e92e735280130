package channel

import (
	"context"

	"github.com/go-campus/campus/pkg/log"
)

// StdoutChannel 开发环境用的通知通道，仅写日志
type StdoutChannel struct{}

func NewStdoutChannel() *StdoutChannel {
	return &StdoutChannel{}
}

func (c *StdoutChannel) Send(ctx context.Context, address, subject, body string) error {
	log.Infow("notification", "to", address, "subject", subject, "body", body)
	return nil
}

func (c *StdoutChannel) Validate() error {
	return nil
}
