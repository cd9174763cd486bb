package engagement

import (
	"math"

	"decktrack-be/internal/dto"
	"decktrack-be/internal/entity"
	"decktrack-be/internal/repository/contract"
)

// sumViewerTotals folds the cumulative viewer counters for a deck.
func sumViewerTotals(viewers []*entity.Viewer) (opens, timeSpent int) {
	for _, v := range viewers {
		opens += v.TotalOpens
		timeSpent += v.TotalTimeSpent
	}
	return opens, timeSpent
}

// averageTimeSpent is the mean dwell per viewer rounded to the nearest
// second, 0 for a deck nobody has opened yet.
func averageTimeSpent(totalTimeSpent, totalViewers int) int {
	if totalViewers == 0 {
		return 0
	}
	return int(math.Round(float64(totalTimeSpent) / float64(totalViewers)))
}

// mostViewedSlide picks the slide with the maximum view count. Ties break to
// the lowest slide number; a deck without events defaults to slide 1.
func mostViewedSlide(rows []contract.SlideAggregateRow) int {
	if len(rows) == 0 {
		return 1
	}
	best := rows[0]
	for _, row := range rows[1:] {
		if row.Views > best.Views || (row.Views == best.Views && row.SlideNumber < best.SlideNumber) {
			best = row
		}
	}
	return best.SlideNumber
}

// dropOffSlide picks the slide with the minimum view count among slides that
// have at least one view, ties to the lowest number. With fewer than two
// distinct slides there is nothing to compute a drop-off from, so it
// defaults to the deck's last page.
func dropOffSlide(rows []contract.SlideAggregateRow, lastPage int) int {
	if len(rows) < 2 {
		return lastPage
	}
	worst := rows[0]
	for _, row := range rows[1:] {
		if row.Views < worst.Views || (row.Views == worst.Views && row.SlideNumber < worst.SlideNumber) {
			worst = row
		}
	}
	return worst.SlideNumber
}

// slideStats converts per-slide rollup rows into response stats, averaging
// dwell over the view count.
func slideStats(rows []contract.SlideAggregateRow) []dto.SlideStats {
	stats := make([]dto.SlideStats, len(rows))
	for i, row := range rows {
		avg := 0
		if row.Views > 0 {
			avg = int(math.Round(float64(row.TotalTime) / float64(row.Views)))
		}
		stats[i] = dto.SlideStats{
			SlideNumber: row.SlideNumber,
			Views:       row.Views,
			AverageTime: avg,
		}
	}
	return stats
}
