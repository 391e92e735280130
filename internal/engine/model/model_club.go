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

// Club 社团表
type Club struct {
	BaseModel
	ClubId      string `gorm:"column:club_id;uniqueIndex" json:"clubId"`
	Name        string `gorm:"column:name;uniqueIndex" json:"name"`   // 全局唯一；MySQL CI 排序规则保证忽略大小写
	Description string `gorm:"column:description" json:"description"` // 简介
	Status      string `gorm:"column:status;default:PENDING" json:"status"`
	IsActive    int    `gorm:"column:is_active;default:1" json:"isActive"`
	HeadUserId  string `gorm:"column:head_user_id" json:"headUserId"` // 社长用户ID
}

func (Club) TableName() string {
	return "t_club"
}

// ClubStatus 注册审核状态，PENDING 之后一次性流转到终态
const (
	ClubStatusPending  = "PENDING"
	ClubStatusApproved = "APPROVED"
	ClubStatusRejected = "REJECTED"
)

type CreateClubReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HeadUserId  string `json:"headUserId"`
}

type UpdateClubReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ReviewClubReq struct {
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

type ChangeHeadReq struct {
	NewHeadUserId string `json:"newHeadUserId"`
}
