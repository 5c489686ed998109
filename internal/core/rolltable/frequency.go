package rolltable

import apperrors "github.com/louisbranch/rolltable/internal/platform/errors"

// DefaultFrequency is the distribution every document provides.
const DefaultFrequency = "default"

// Weights is a resolved distribution aligned with a document's options.
// Values[i] is the selection weight of Options[i].
type Weights struct {
	Name    string
	Options []string
	Values  []float64
}

// Of returns the weight of option, or false when the document lacks it.
func (w Weights) Of(option string) (float64, bool) {
	for i, name := range w.Options {
		if name == option {
			return w.Values[i], true
		}
	}
	return 0, false
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	total := 0.0
	for _, v := range w.Values {
		total += v
	}
	return total
}

// ResolveFrequency resolves the named distribution of doc. An empty name
// selects DefaultFrequency.
//
// The default distribution weighs every option optionCount/100 unless the
// document declares its own default, which replaces it entirely. Named
// distributions are used verbatim: options they omit weigh zero and are never
// drawn. A distribution naming an option the document lacks fails with
// ErrUnknownOption.
func ResolveFrequency(doc Document, name string) (Weights, error) {
	if name == "" {
		name = DefaultFrequency
	}
	names := doc.OptionNames()
	weights := Weights{
		Name:    name,
		Options: names,
		Values:  make([]float64, len(names)),
	}

	dist, ok := doc.Metadata.Distribution(name)
	if !ok {
		if name != DefaultFrequency {
			return Weights{}, apperrors.WithMetadata(apperrors.CodeUnknownFrequency, "frequency is not declared", map[string]string{"frequency": name})
		}
		defaultWeight := float64(len(names)) / 100
		for i := range weights.Values {
			weights.Values[i] = defaultWeight
		}
		return weights, nil
	}

	index := make(map[string]int, len(names))
	for i, option := range names {
		index[option] = i
	}
	for _, w := range dist.Weights {
		i, ok := index[w.Option]
		if !ok {
			return Weights{}, apperrors.WithMetadata(apperrors.CodeUnknownOption, "frequency names an unknown option", map[string]string{"frequency": name, "option": w.Option})
		}
		weights.Values[i] = w.Value
	}
	return weights, nil
}
