package restrictions

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dates"
)

// WindowPolicy задает, как применять правило, у которого указана только одна граница окна дат
type WindowPolicy string

const (
	// WindowPolicyAlways правило с неполным окном применяется всегда, независимо от дат
	WindowPolicyAlways WindowPolicy = "always"
	// WindowPolicyOpenEnded отсутствующая граница считается открытой, заданная - проверяется
	WindowPolicyOpenEnded WindowPolicy = "open_ended"
	// WindowPolicyIgnore правило с неполным окном не применяется
	WindowPolicyIgnore WindowPolicy = "ignore"
)

// ParseWindowPolicy конвертирует значение из конфига
func ParseWindowPolicy(s string) (WindowPolicy, error) {
	switch WindowPolicy(s) {
	case "":
		return WindowPolicyAlways, nil
	case WindowPolicyAlways, WindowPolicyOpenEnded, WindowPolicyIgnore:
		return WindowPolicy(s), nil
	default:
		return "", fmt.Errorf("%w: unknown partial window policy %q", ErrInvalidInput, s)
	}
}

// Result результат проверки проживания по правилам
type Result struct {
	IsValid bool
	Message string
}

// Evaluator проверяет проживание (заезд, выезд, тип номера) по списку правил
type Evaluator struct {
	policy WindowPolicy
}

// NewEvaluator создает evaluator с заданной политикой неполных окон
func NewEvaluator(policy WindowPolicy) *Evaluator {
	if policy == "" {
		policy = WindowPolicyAlways
	}
	return &Evaluator{policy: policy}
}

// Policy возвращает текущую политику
func (e *Evaluator) Policy() WindowPolicy {
	return e.policy
}

// Evaluate проверяет проживание [checkIn, checkOut) для типа номера.
// Для каждого вида правила берется первое подходящее по области действия (в порядке списка)
func (e *Evaluator) Evaluate(checkIn, checkOut time.Time, roomTypeID int64, restrictions []*domain.Restriction) Result {
	nights := dates.Nights(checkIn, checkOut)
	weekday := checkIn.Weekday()

	if rule := e.firstMatching(domain.RestrictionMinStay, checkIn, checkOut, roomTypeID, restrictions); rule != nil {
		if rule.Value.MinNights != nil && nights < *rule.Value.MinNights {
			return Result{IsValid: false, Message: fmt.Sprintf(domain.MsgMinStayTemplate, *rule.Value.MinNights)}
		}
	}

	if rule := e.firstMatching(domain.RestrictionCheckInDays, checkIn, checkOut, roomTypeID, restrictions); rule != nil {
		if !rule.AllowsWeekday(weekday) {
			return Result{IsValid: false, Message: domain.MsgCheckInDayBlocked}
		}
	}

	return Result{IsValid: true}
}

func (e *Evaluator) firstMatching(
	restrictionType domain.RestrictionType,
	checkIn, checkOut time.Time,
	roomTypeID int64,
	restrictions []*domain.Restriction,
) *domain.Restriction {
	for _, r := range restrictions {
		if r == nil || r.Type != restrictionType {
			continue
		}
		if !r.AppliesToRoomType(roomTypeID) {
			continue
		}
		if e.inWindow(r, checkIn, checkOut) {
			return r
		}
	}
	return nil
}

// inWindow: правило без окна применяется всегда; с полным окном - если
// checkIn >= start и checkOut <= end; с неполным - по политике
func (e *Evaluator) inWindow(r *domain.Restriction, checkIn, checkOut time.Time) bool {
	if r.StartDate == nil && r.EndDate == nil {
		return true
	}

	in, out := dates.Normalize(checkIn), dates.Normalize(checkOut)
	startOK := r.StartDate == nil || !in.Before(dates.Normalize(*r.StartDate))
	endOK := r.EndDate == nil || !out.After(dates.Normalize(*r.EndDate))

	if r.HasWindow() {
		return startOK && endOK
	}

	switch e.policy {
	case WindowPolicyOpenEnded:
		return startOK && endOK
	case WindowPolicyIgnore:
		return false
	default:
		return true
	}
}
