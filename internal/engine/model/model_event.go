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

// Event 社团活动表
type Event struct {
	BaseModel
	EventId         string    `gorm:"column:event_id;uniqueIndex" json:"eventId"`
	ClubId          string    `gorm:"column:club_id;index" json:"clubId"`
	Name            string    `gorm:"column:name" json:"name"`
	Description     string    `gorm:"column:description" json:"description"`
	Location        string    `gorm:"column:location" json:"location"`
	EventDate       time.Time `gorm:"column:event_date" json:"eventDate"`
	MaxParticipants int       `gorm:"column:max_participants" json:"maxParticipants"` // 0 表示不限
	IsActive        int       `gorm:"column:is_active;default:1" json:"isActive"`
	IsDone          int       `gorm:"column:is_done;default:0" json:"isDone"`
}

func (Event) TableName() string {
	return "t_event"
}

// EventParticipant 活动报名表
type EventParticipant struct {
	BaseModel
	EventId  string    `gorm:"column:event_id;uniqueIndex:uk_event_user" json:"eventId"`
	UserId   string    `gorm:"column:user_id;uniqueIndex:uk_event_user" json:"userId"`
	JoinedAt time.Time `gorm:"column:joined_at" json:"joinedAt"`
}

func (EventParticipant) TableName() string {
	return "t_event_participant"
}

type CreateEventReq struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	EventDate       time.Time `json:"eventDate"`
	MaxParticipants int       `json:"maxParticipants"`
}
