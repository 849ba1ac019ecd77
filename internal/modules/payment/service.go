// Package payment wraps an opaque payment processor with logging and
// amount validation. Settlement itself happens outside this system.
package payment

// Processor is the external charge/refund gateway.
type Processor interface {
	Charge(amount float64) bool
	Refund(amount float64) bool
}

type Service struct {
	processor Processor
	loggerf   func(format string, args ...interface{})
}

func NewService(processor Processor, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{processor: processor, loggerf: loggerf}
}

// Charge bills the given amount. Zero is trivially successful, negative
// amounts are rejected.
func (s *Service) Charge(amount float64) bool {
	if amount < 0 {
		return false
	}
	if amount == 0 {
		return true
	}
	ok := s.processor.Charge(amount)
	s.loggerf("level=info msg=payment charge amount=%.2f ok=%t", amount, ok)
	return ok
}

// Refund returns the given amount. Zero is trivially successful, negative
// amounts are rejected.
func (s *Service) Refund(amount float64) bool {
	if amount < 0 {
		return false
	}
	if amount == 0 {
		return true
	}
	ok := s.processor.Refund(amount)
	s.loggerf("level=info msg=payment refund amount=%.2f ok=%t", amount, ok)
	return ok
}
