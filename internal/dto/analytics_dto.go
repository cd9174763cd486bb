package dto

import (
	"time"

	"github.com/google/uuid"
)

type SlideStats struct {
	SlideNumber int `json:"slide_number"`
	Views       int `json:"views"`
	AverageTime int `json:"average_time"`
}

type DailyViews struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

type DeckAnalyticsResponse struct {
	Deck             DeckResponse     `json:"deck"`
	TotalViewers     int              `json:"total_viewers"`
	TotalOpens       int              `json:"total_opens"`
	AverageTimeSpent int              `json:"average_time_spent"`
	MostViewedSlide  int              `json:"most_viewed_slide"`
	DropOffSlide     int              `json:"drop_off_slide"`
	SlideStats       []SlideStats     `json:"slide_stats"`
	ViewsOverTime    []DailyViews     `json:"views_over_time"`
	Viewers          []ViewerResponse `json:"viewers"`
}

type SessionSlide struct {
	SlideNumber int       `json:"slide_number"`
	TimeSpent   int       `json:"time_spent"`
	ViewedAt    time.Time `json:"viewed_at"`
}

type SessionDetail struct {
	Id        uuid.UUID      `json:"id"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   *time.Time     `json:"ended_at"`
	Duration  int            `json:"duration"`
	Slides    []SessionSlide `json:"slides"`
}

type ViewerDetailResponse struct {
	Viewer   ViewerResponse  `json:"viewer"`
	Sessions []SessionDetail `json:"sessions"`
}
