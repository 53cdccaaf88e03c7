package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func document(t *testing.T, docType string, expiry time.Time) carrier.ComplianceDocument {
	t.Helper()
	doc, err := carrier.NewComplianceDocument(docType, expiry.AddDate(-1, 0, 0), expiry)
	require.NoError(t, err)
	return doc
}

// fullDocumentSet returns every default required type expiring at the given time.
func fullDocumentSet(t *testing.T, expiry time.Time) []carrier.ComplianceDocument {
	t.Helper()
	docs := make([]carrier.ComplianceDocument, 0, 3)
	for _, docType := range services.DefaultRequiredDocumentTypes() {
		docs = append(docs, document(t, docType, expiry))
	}
	return docs
}

func TestComplianceEvaluator_Evaluate(t *testing.T) {
	evaluator := services.NewComplianceEvaluator(nil, 0)

	t.Run("no documents is warning, not non-compliant", func(t *testing.T) {
		status := evaluator.Evaluate(nil, evalTime)

		assert.Equal(t, carrier.Warning, status)
	})

	t.Run("missing required type in a non-empty set is non-compliant", func(t *testing.T) {
		docs := []carrier.ComplianceDocument{
			document(t, "operator_licence", evalTime.AddDate(1, 0, 0)),
		}

		status := evaluator.Evaluate(docs, evalTime)

		assert.Equal(t, carrier.NonCompliant, status)
	})

	t.Run("any expired document is non-compliant", func(t *testing.T) {
		docs := fullDocumentSet(t, evalTime.AddDate(1, 0, 0))
		docs = append(docs, document(t, "waste_carrier_licence", evalTime.AddDate(0, 0, -1)))

		status := evaluator.Evaluate(docs, evalTime)

		assert.Equal(t, carrier.NonCompliant, status)
	})

	t.Run("earliest expiry inside the warning window is warning", func(t *testing.T) {
		docs := fullDocumentSet(t, evalTime.AddDate(1, 0, 0))
		docs[0] = document(t, docs[0].Type(), evalTime.AddDate(0, 0, 10))

		status := evaluator.Evaluate(docs, evalTime)

		assert.Equal(t, carrier.Warning, status)
	})

	t.Run("all documents present and far from expiry is compliant", func(t *testing.T) {
		docs := fullDocumentSet(t, evalTime.AddDate(1, 0, 0))

		status := evaluator.Evaluate(docs, evalTime)

		assert.Equal(t, carrier.Compliant, status)
	})

	t.Run("required type comparison survives formatting differences", func(t *testing.T) {
		docs := []carrier.ComplianceDocument{
			document(t, "Operator Licence", evalTime.AddDate(1, 0, 0)),
			document(t, "Motor-Insurance", evalTime.AddDate(1, 0, 0)),
			document(t, "Goods In Transit", evalTime.AddDate(1, 0, 0)),
		}

		status := evaluator.Evaluate(docs, evalTime)

		assert.Equal(t, carrier.Compliant, status)
	})

	t.Run("is deterministic across repeated calls", func(t *testing.T) {
		docs := fullDocumentSet(t, evalTime.AddDate(0, 0, 20))

		first := evaluator.Evaluate(docs, evalTime)
		for range 10 {
			assert.Equal(t, first, evaluator.Evaluate(docs, evalTime))
		}
	})
}

func TestComplianceEvaluator_Configuration(t *testing.T) {
	t.Run("custom warning window is respected", func(t *testing.T) {
		narrow := services.NewComplianceEvaluator(nil, 24*time.Hour)
		docs := fullDocumentSet(t, evalTime.AddDate(0, 0, 10))

		assert.Equal(t, carrier.Compliant, narrow.Evaluate(docs, evalTime))
	})

	t.Run("explicit empty required types disables the completeness check", func(t *testing.T) {
		lax := services.NewComplianceEvaluator([]string{}, 0)
		docs := []carrier.ComplianceDocument{
			document(t, "operator_licence", evalTime.AddDate(1, 0, 0)),
		}

		assert.Equal(t, carrier.Compliant, lax.Evaluate(docs, evalTime))
	})
}
