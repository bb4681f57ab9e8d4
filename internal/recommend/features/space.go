// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package features

import (
	"errors"
	"fmt"
)

// DefaultMaxFeatures caps the text vocabulary.
const DefaultMaxFeatures = 10000

// ErrLengthMismatch indicates texts and runtimes describe different item counts.
var ErrLengthMismatch = errors.New("texts and runtimes length mismatch")

// Space is the fitted feature space shared by catalog items and queries.
//
// Every vector has Dim() dimensions: the TF-IDF term weights at
// [0, VocabularySize()) followed by the scaled runtime at index
// VocabularySize(). A Space is immutable and safe for concurrent use.
type Space struct {
	vectorizer *Vectorizer
	scaler     MinMaxScaler
	vectors    []SparseVector
}

// Build fits the vectorizer on texts and the scaler on runtimes, then
// computes one concatenated vector per item. texts[i] and runtimes[i]
// describe the same item.
func Build(texts []string, runtimes []float64, maxFeatures int) (*Space, error) {
	if len(texts) != len(runtimes) {
		return nil, fmt.Errorf("%w: %d texts, %d runtimes", ErrLengthMismatch, len(texts), len(runtimes))
	}

	vectorizer, textVectors := FitVectorizer(texts, maxFeatures)
	scaler := FitMinMax(runtimes)
	runtimeIdx := vectorizer.Size()

	vectors := make([]SparseVector, len(texts))
	for i, tv := range textVectors {
		vectors[i] = tv.With(runtimeIdx, scaler.Transform(runtimes[i]))
	}

	return &Space{
		vectorizer: vectorizer,
		scaler:     scaler,
		vectors:    vectors,
	}, nil
}

// Len returns the number of item vectors.
func (s *Space) Len() int {
	return len(s.vectors)
}

// Dim returns the dimensionality of every vector in the space.
func (s *Space) Dim() int {
	return s.vectorizer.Size() + 1
}

// VocabularySize returns the number of text dimensions.
func (s *Space) VocabularySize() int {
	return s.vectorizer.Size()
}

// RuntimeIndex returns the dimension holding the scaled runtime.
func (s *Space) RuntimeIndex() int {
	return s.vectorizer.Size()
}

// RuntimeRange returns the runtime range observed at fit time.
func (s *Space) RuntimeRange() (lo, hi float64) {
	return s.scaler.Min, s.scaler.Max
}

// Vectorizer returns the fitted text model.
func (s *Space) Vectorizer() *Vectorizer {
	return s.vectorizer
}

// Vector returns the feature vector of item i. The returned vector shares
// storage with the space and must not be modified.
func (s *Space) Vector(i int) SparseVector {
	return s.vectors[i]
}

// Project maps a free text and a runtime into the space using the fitted
// vocabulary and scaler. The scaled runtime is clamped to [0, 1] so that
// an open-ended target runtime cannot dominate the text dimensions.
func (s *Space) Project(text string, runtime float64) SparseVector {
	return s.vectorizer.Transform(text).With(s.RuntimeIndex(), s.scaler.TransformClamped(runtime))
}
