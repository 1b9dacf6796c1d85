// Package converter turns command results into display models.
package converter
