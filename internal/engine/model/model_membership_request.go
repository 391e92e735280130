// Copyright 2025 Campus Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import "time"

// MembershipRequest 入社申请表，同一 (user, club) 最多一条 PENDING
type MembershipRequest struct {
	BaseModel
	RequestId       string     `gorm:"column:request_id;uniqueIndex" json:"requestId"`
	UserId          string     `gorm:"column:user_id" json:"userId"`
	ClubId          string     `gorm:"column:club_id" json:"clubId"`
	Message         string     `gorm:"column:message" json:"message"`
	Status          string     `gorm:"column:status;default:PENDING" json:"status"`
	RequestDate     time.Time  `gorm:"column:request_date" json:"requestDate"`
	ProcessedBy     string     `gorm:"column:processed_by" json:"processedBy,omitempty"`
	ProcessedAt     *time.Time `gorm:"column:processed_at" json:"processedAt,omitempty"`
	ResponseMessage string     `gorm:"column:response_message" json:"responseMessage,omitempty"`
}

func (MembershipRequest) TableName() string {
	return "t_membership_request"
}

// MembershipRequestStatus 申请状态
const (
	RequestStatusPending  = "PENDING"
	RequestStatusApproved = "APPROVED"
	RequestStatusRejected = "REJECTED"
)

type CreateRequestReq struct {
	ClubId  string `json:"clubId"`
	Message string `json:"message"`
}

type ProcessRequestReq struct {
	Message string `json:"message"`
}
