// Package plan turns free-form multi-line plan text into draft reminder jobs:
// a time-token extractor, a trailing "… kadar" duration resolver and a fuzzy
// vocabulary normalizer, composed by Pipeline.
package plan
