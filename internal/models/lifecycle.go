package models

import "fmt"

// OffsetDays возвращает количество дней до следующего продления для периодичности.
// Месяц и год считаются как 30 и 365 календарных дней.
func OffsetDays(f Frequency) (int, error) {
	switch f {
	case FrequencyDaily:
		return 1, nil
	case FrequencyWeekly:
		return 7, nil
	case FrequencyMonthly:
		return 30, nil
	case FrequencyYearly:
		return 365, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, f)
	}
}

// ApplyLifecycle дополняет подписку перед сохранением: выводит RenewalDate
// из StartDate и Frequency, если дата продления не задана, и переводит подписку
// в expired, если дата продления раньше даты начала.
func (s *Subscription) ApplyLifecycle() error {
	if s.RenewalDate == nil {
		days, err := OffsetDays(s.Frequency)
		if err != nil {
			return err
		}
		renewal := s.StartDate.AddDate(0, 0, days)
		s.RenewalDate = &renewal
	}
	if s.RenewalDate.Before(s.StartDate) {
		s.Status = StatusExpired
	}
	return nil
}

// Event формирует событие для публикации в брокер.
func (s *Subscription) Event() SubscriptionEvent {
	ev := SubscriptionEvent{
		SubscriptionID: s.ID,
		UserID:         s.UserID,
		Name:           s.Name,
		Status:         s.Status,
	}
	if s.RenewalDate != nil {
		ev.RenewalDate = *s.RenewalDate
	}
	return ev
}
