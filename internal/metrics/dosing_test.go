package metrics

import (
	"errors"
	"testing"

	"github.com/epeers/gardenfeed/internal/nutrients"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDosingMetrics_RecordCalculation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewDosingMetrics(reg)
	require.NoError(t, err)

	in := nutrients.Input{
		Stage:    nutrients.StageVegetative,
		Volume:   5,
		Symptoms: []nutrients.Symptom{nutrients.NitrogenDeficiency, nutrients.MagnesiumDeficiency, nutrients.IronDeficiency},
	}
	out := nutrients.Compute(in)
	m.RecordCalculation(in, &out)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculationsTotal.WithLabelValues("vegetative", "500")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verdictsTotal.WithLabelValues("underfeeding")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.warningsTotal.WithLabelValues("severe")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.warningsTotal.WithLabelValues("antagonism")))
}

func TestDosingMetrics_FeedLogWrites(t *testing.T) {
	m, err := NewDosingMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.RecordFeedLogWrite(nil)
	m.RecordFeedLogWrite(errors.New("db down"))
	m.RecordFeedLogWrite(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.feedLogWrites.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.feedLogWrites.WithLabelValues("error")))
}

func TestDosingMetrics_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewDosingMetrics(reg)
	require.NoError(t, err)
	_, err = NewDosingMetrics(reg)
	assert.Error(t, err)
}
