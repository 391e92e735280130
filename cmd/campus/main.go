package main

import (
	"flag"
	"fmt"

	"github.com/go-campus/campus/internal/bootstrap"
	"github.com/go-campus/campus/internal/engine/conf"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/runner"
)

/**
 * @file: main.go
 * @description: campus server program
 */

var (
	configFile string
)

func init() {
	flag.StringVar(&configFile, "conf", "conf.d/config.toml", "conf file path, e.g. -conf ./conf.d/config.toml")
}

func main() {
	flag.Parse()
	printRunner()

	appConf := conf.NewConf(configFile)

	app, cleanup, err := bootstrap.NewApp(appConf)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	// 阻塞直至收到退出信号
	shutdown := http.NewHttp(appConf.Http, app.HttpApp)
	shutdown()
}

func printRunner() {
	fmt.Println("runner.pwd:", runner.Pwd)
	fmt.Println("runner.hostname:", runner.Hostname)
}
