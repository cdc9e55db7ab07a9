package activities

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithEvaluator replaces the availability evaluator.
func WithEvaluator(e AvailabilityEvaluator) Option {
	return func(m *Matcher) {
		if e != nil {
			m.evaluator = e
		}
	}
}

// WithRanker replaces the suggestion ranker.
func WithRanker(r SuggestionRanker) Option {
	return func(m *Matcher) {
		if r != nil {
			m.ranker = r
		}
	}
}
