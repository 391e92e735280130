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

// ClubMember 社团成员表，软删除保留历史
type ClubMember struct {
	BaseModel
	ClubId    string     `gorm:"column:club_id;uniqueIndex:uk_club_user" json:"clubId"`
	UserId    string     `gorm:"column:user_id;uniqueIndex:uk_club_user" json:"userId"`
	IsActive  int        `gorm:"column:is_active;default:1" json:"isActive"`
	JoinDate  time.Time  `gorm:"column:join_date" json:"joinDate"`
	LeaveDate *time.Time `gorm:"column:leave_date" json:"leaveDate,omitempty"`
}

func (ClubMember) TableName() string {
	return "t_club_member"
}
