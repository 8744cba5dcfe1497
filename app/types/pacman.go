// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HighScore is a finished game submitted to the leaderboard.
type HighScore struct {
	ID    uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	Name  string    `json:"name"`
	Cloud string    `json:"cloud"`
	Zone  string    `json:"zone"`
	Host  string    `json:"host"`
	Score int       `gorm:"index" json:"score"`
	Level int       `json:"level"`
	Date  time.Time `json:"date"`

	// request metadata
	Referer   string `json:"-"`
	UserAgent string `json:"-"`
	Hostname  string `json:"-"`
	IPAddr    string `json:"-"`
}

func (h *HighScore) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// UserStat tracks one player session. It is created empty when the player is
// assigned an id and filled by subsequent stats updates.
type UserStat struct {
	ID            uuid.UUID `gorm:"type:text;primaryKey"`
	Date          time.Time
	Cloud         string
	Zone          string
	Host          string
	Score         *int `gorm:"index"`
	Level         int
	Lives         int
	ElapsedTime   int
	UpdateCounter int `gorm:"not null;default:0"`
	Referer       string
	UserAgent     string
	Hostname      string
	IPAddr        string
	CreatedAt     time.Time
}

func (u *UserStat) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserStatUpdate is the set of fields written by a stats update.
type UserStatUpdate struct {
	Cloud       string
	Zone        string
	Host        string
	Score       int
	Level       int
	Lives       int
	ElapsedTime int
	RequestInfo
}

// RequestInfo describes the HTTP request a write originated from.
type RequestInfo struct {
	Referer   string
	UserAgent string
	Hostname  string
	IPAddr    string
}
