package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCompleteForm(t *testing.T) {
	assert.True(t, hasCompleteForm("(+ 1 2)"))
	assert.False(t, hasCompleteForm("(+ 1 2"))
	assert.False(t, hasCompleteForm(""))
}

func TestRunFileEvaluatesInOrder(t *testing.T) {
	err := RunFile(`(define x 1) (define y (+ x 1)) (if (= y 2) #t (error "bad"))`)
	assert.NoError(t, err)
}

func TestRunFileStopsOnFirstError(t *testing.T) {
	err := RunFile(`(car '())`)
	assert.Error(t, err)
}
