// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package features

import (
	"math"
	"sort"
)

// Vectorizer is a fitted TF-IDF model: a fixed vocabulary and one inverse
// document frequency weight per term. It is immutable after fitting.
type Vectorizer struct {
	vocab map[string]int
	terms []string
	idf   []float64
}

// FitVectorizer learns the vocabulary and IDF weights from docs and returns
// the fitted model together with the vector of every document.
//
// When maxFeatures > 0 the vocabulary keeps the maxFeatures terms with the
// highest document frequency; ties go to the higher corpus term count, then
// to the lexically smaller term. Term indices are assigned in lexical order.
//
// IDF uses smoothing: idf(t) = ln((1+n) / (1+df(t))) + 1.
func FitVectorizer(docs []string, maxFeatures int) (*Vectorizer, []SparseVector) {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	tf := make(map[string]int)

	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}

	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			a, b := terms[i], terms[j]
			if df[a] != df[b] {
				return df[a] > df[b]
			}
			if tf[a] != tf[b] {
				return tf[a] > tf[b]
			}
			return a < b
		})
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	for i, term := range terms {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]SparseVector, len(docs))
	for i, tokens := range tokenized {
		vectors[i] = v.weigh(tokens)
	}
	return v, vectors
}

// Size returns the vocabulary size.
func (v *Vectorizer) Size() int {
	return len(v.terms)
}

// Terms returns the vocabulary in index order.
func (v *Vectorizer) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Index returns the vocabulary index of term.
func (v *Vectorizer) Index(term string) (int, bool) {
	idx, ok := v.vocab[term]
	return idx, ok
}

// IDF returns the weight of the term at idx.
func (v *Vectorizer) IDF(idx int) float64 {
	return v.idf[idx]
}

// Transform projects text through the fitted vocabulary.
// Unknown terms are ignored; text without known terms yields an empty vector.
func (v *Vectorizer) Transform(text string) SparseVector {
	return v.weigh(Tokenize(text))
}

// weigh computes the L2-normalized tf*idf vector of a token list.
func (v *Vectorizer) weigh(tokens []string) SparseVector {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if idx, ok := v.vocab[tok]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var sumSq float64
	for k, idx := range indices {
		w := float64(counts[idx]) * v.idf[idx]
		values[k] = w
		sumSq += w * w
	}
	if norm := math.Sqrt(sumSq); norm > 0 {
		for k := range values {
			values[k] /= norm
		}
	}

	return SparseVector{Indices: indices, Values: values}
}
