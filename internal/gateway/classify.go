package gateway

import (
    "fmt"
    "strings"

    "github.com/cinecatch/client-core/internal/model"
)

// Poster shown when the crawler delivered no image for an event.
const defaultPosterURL = "https://images.unsplash.com/photo-1478720568477-152d9b164e26?auto=format&fit=crop&w=800&q=80"

// classifyCategory buckets an event by its goods title.  The crawler
// emits free Korean text, so this is string containment against the
// phrases the theater chains actually use.
func classifyCategory(goodsTitle string) model.EventCategory {
    title := strings.ToLower(goodsTitle)
    switch {
    case strings.Contains(title, "gv"), strings.Contains(title, "관람"):
        return model.CategoryGV
    case strings.Contains(title, "할인"), strings.Contains(title, "쿠폰"):
        return model.CategoryCoupon
    default:
        return model.CategoryGoods
    }
}

// classifyAvailability interprets a per-theater status string.  Only a
// positive match ("보유"/"신청" — in stock / accepting applications) counts
// as available and "마감" (closed out) as closed; anything else is
// reported as needs-confirmation rather than asserted either way.
func classifyAvailability(status string) model.Availability {
    switch {
    case strings.Contains(status, "보유"), strings.Contains(status, "신청"):
        return model.AvailabilityAvailable
    case strings.Contains(status, "마감"):
        return model.AvailabilityClosed
    default:
        return model.AvailabilityNeedsConfirmation
    }
}

// formatEventDate renders the screens' "M/D ~ M/D" range, or
// "날짜 미정" (date undecided) when either bound is missing.
func formatEventDate(startAt, endAt *string) string {
    if startAt == nil || endAt == nil {
        return "날짜 미정"
    }
    start := parseBackendTime(*startAt)
    end := parseBackendTime(*endAt)
    if start.IsZero() || end.IsZero() {
        return "날짜 미정"
    }
    return fmt.Sprintf("%d/%d ~ %d/%d", int(start.Month()), start.Day(), int(end.Month()), end.Day())
}

// formatEventTime renders "HH:MM 시작" (starts at), or "" without a start.
func formatEventTime(startAt *string) string {
    if startAt == nil {
        return ""
    }
    start := parseBackendTime(*startAt)
    if start.IsZero() {
        return ""
    }
    return start.Format("15:04") + " 시작"
}
