package engagement

import (
	"testing"

	"decktrack-be/internal/entity"
	"decktrack-be/internal/repository/contract"
)

func TestMostViewedSlide(t *testing.T) {
	tests := []struct {
		name string
		rows []contract.SlideAggregateRow
		want int
	}{
		{
			name: "no events defaults to first slide",
			rows: nil,
			want: 1,
		},
		{
			name: "single slide",
			rows: []contract.SlideAggregateRow{
				{SlideNumber: 4, Views: 7},
			},
			want: 4,
		},
		{
			name: "clear maximum",
			rows: []contract.SlideAggregateRow{
				{SlideNumber: 1, Views: 3},
				{SlideNumber: 2, Views: 9},
				{SlideNumber: 3, Views: 5},
			},
			want: 2,
		},
		{
			name: "tie breaks to lowest slide number",
			rows: []contract.SlideAggregateRow{
				{SlideNumber: 1, Views: 3},
				{SlideNumber: 2, Views: 3},
			},
			want: 1,
		},
		{
			name: "tie with unordered rows still lowest",
			rows: []contract.SlideAggregateRow{
				{SlideNumber: 5, Views: 4},
				{SlideNumber: 2, Views: 4},
				{SlideNumber: 3, Views: 1},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mostViewedSlide(tt.rows); got != tt.want {
				t.Errorf("mostViewedSlide() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDropOffSlide(t *testing.T) {
	tests := []struct {
		name     string
		rows     []contract.SlideAggregateRow
		lastPage int
		want     int
	}{
		{
			name:     "no events defaults to last page",
			rows:     nil,
			lastPage: 12,
			want:     12,
		},
		{
			name: "single slide defaults to last page",
			rows: []contract.SlideAggregateRow{
				{SlideNumber: 1, Views: 10},
			},
			lastPage: 8,
			want:     8,
		},
		{
			name: "least viewed slide wins",
			rows: []contract.SlideAggregateRow{
				{SlideNumber: 1, Views: 10},
				{SlideNumber: 2, Views: 6},
				{SlideNumber: 3, Views: 2},
			},
			lastPage: 3,
			want:     3,
		},
		{
			name: "tie breaks to lowest slide number",
			rows: []contract.SlideAggregateRow{
				{SlideNumber: 2, Views: 1},
				{SlideNumber: 4, Views: 1},
				{SlideNumber: 1, Views: 5},
			},
			lastPage: 10,
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dropOffSlide(tt.rows, tt.lastPage); got != tt.want {
				t.Errorf("dropOffSlide() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAverageTimeSpent(t *testing.T) {
	tests := []struct {
		name         string
		totalTime    int
		totalViewers int
		want         int
	}{
		{name: "no viewers", totalTime: 100, totalViewers: 0, want: 0},
		{name: "exact division", totalTime: 90, totalViewers: 3, want: 30},
		{name: "rounds up", totalTime: 10, totalViewers: 4, want: 3},
		{name: "rounds down", totalTime: 10, totalViewers: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := averageTimeSpent(tt.totalTime, tt.totalViewers); got != tt.want {
				t.Errorf("averageTimeSpent(%d, %d) = %d, want %d", tt.totalTime, tt.totalViewers, got, tt.want)
			}
		})
	}
}

func TestSumViewerTotals(t *testing.T) {
	viewers := []*entity.Viewer{
		{TotalOpens: 3, TotalTimeSpent: 120},
		{TotalOpens: 1, TotalTimeSpent: 45},
		{TotalOpens: 0, TotalTimeSpent: 0},
	}

	opens, timeSpent := sumViewerTotals(viewers)
	if opens != 4 {
		t.Errorf("opens = %d, want 4", opens)
	}
	if timeSpent != 165 {
		t.Errorf("timeSpent = %d, want 165", timeSpent)
	}
}

func TestSlideStats(t *testing.T) {
	rows := []contract.SlideAggregateRow{
		{SlideNumber: 1, Views: 4, TotalTime: 10},
		{SlideNumber: 2, Views: 0, TotalTime: 0},
		{SlideNumber: 3, Views: 3, TotalTime: 10},
	}

	stats := slideStats(rows)
	if len(stats) != 3 {
		t.Fatalf("len(stats) = %d, want 3", len(stats))
	}
	if stats[0].AverageTime != 3 {
		t.Errorf("slide 1 average = %d, want 3", stats[0].AverageTime)
	}
	if stats[1].AverageTime != 0 {
		t.Errorf("slide 2 average = %d, want 0", stats[1].AverageTime)
	}
	if stats[2].AverageTime != 3 {
		t.Errorf("slide 3 average = %d, want 3", stats[2].AverageTime)
	}
	if stats[2].Views != 3 {
		t.Errorf("slide 3 views = %d, want 3", stats[2].Views)
	}
}
