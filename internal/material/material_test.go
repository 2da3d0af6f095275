package material

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeta1(t *testing.T) {
	tests := []struct {
		name string
		fc   float64
		want float64
	}{
		{"low strength", 21, 0.85},
		{"at limit", 28, 0.85},
		{"taper", 35, 0.80},
		{"floor", 70, 0.65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Beta1(tt.fc), 1e-12)
		})
	}
	assert.InDelta(t, 0.80, Beta1Psi(5000), 1e-12)
	assert.InDelta(t, 0.65, Beta1Psi(10000), 1e-12)
}

func TestPhi(t *testing.T) {
	ey := 60000.0 / EsPsi
	assert.Equal(t, PhiTension, Phi(0.01, ey, false))
	assert.Equal(t, PhiCompression, Phi(0.001, ey, false))
	assert.Equal(t, PhiSpiral, Phi(0.001, ey, true))

	mid := ey + 0.0015
	assert.InDelta(t, (PhiTension+PhiCompression)/2, Phi(mid, ey, false), 1e-12)
	assert.Equal(t, "transition", Classify(mid, ey))
	assert.Equal(t, "tension-controlled", Classify(0.01, ey))
	assert.Equal(t, "compression-controlled", Classify(-0.001, ey))
}

func TestParseUnits(t *testing.T) {
	u, err := ParseUnits("Metric")
	require.NoError(t, err)
	assert.Equal(t, Metric, u)

	u, err = ParseUnits("US")
	require.NoError(t, err)
	assert.Equal(t, Imperial, u)

	_, err = ParseUnits("cubits")
	assert.True(t, errors.Is(err, ErrUnknownUnits))
}

func TestLengthFactor(t *testing.T) {
	f, err := Imperial.LengthFactor(Metric)
	require.NoError(t, err)
	assert.Equal(t, 25.4, f)

	f, err = Metric.LengthFactor(Imperial)
	require.NoError(t, err)
	assert.InDelta(t, 1/25.4, f, 1e-15)

	f, err = Metric.LengthFactor(Metric)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	_, err = Units("furlongs").LengthFactor(Metric)
	assert.True(t, errors.Is(err, ErrUnknownUnits))
}

func TestACIImperial(t *testing.T) {
	c := ACIImperial(4, 145)
	assert.Equal(t, 4000.0, c.Fc)
	assert.InDelta(t, math.Pow(145, 1.5)*33*math.Sqrt(4000), c.Ec, 1e-6)
	assert.InDelta(t, 3644, c.Ec/1000, 1)
	assert.Equal(t, EpsilonCU, c.Eu)
	assert.Equal(t, 0.85, c.Beta1())

	d := ACIImperial(4, 0)
	assert.Equal(t, 145.0, d.Density)
}

func TestNewConcrete(t *testing.T) {
	c, err := NewConcrete(Metric, 28, 0)
	require.NoError(t, err)
	assert.InDelta(t, 25000, c.Ec, 1000)
	assert.InDelta(t, 28*PsiPerMPa, c.FcPsi(), 1e-9)

	_, err = NewConcrete(Units("x"), 28, 0)
	assert.True(t, errors.Is(err, ErrUnknownUnits))
}

func TestEC2Table(t *testing.T) {
	c := EC2(30)
	assert.Equal(t, 0.002, c.Ec2)
	assert.Equal(t, 0.0035, c.Ecu2)
	assert.Equal(t, 2.0, c.N)
	assert.InDelta(t, 17, c.Fcd(0.85, 1.5), 1e-12)
	assert.Equal(t, 30.0, c.Fcd(1, 0))

	// Table 3.1 for C90/105
	h := EC2(90)
	assert.InDelta(t, 0.0026, h.Ec2, 1e-5)
	assert.InDelta(t, 0.0026, h.Ecu2, 1e-12)
	assert.InDelta(t, 1.4, h.N, 1e-12)
}

func TestLookupBar(t *testing.T) {
	b, err := LookupBar(Imperial, 8)
	require.NoError(t, err)
	assert.Equal(t, 0.79, b.Area)
	assert.Equal(t, 1.0, b.Diameter)

	m, err := b.Convert(Metric)
	require.NoError(t, err)
	assert.Equal(t, 25, m.Size)
	assert.Equal(t, 510.0, m.Area)

	back, err := m.Convert(Imperial)
	require.NoError(t, err)
	assert.Equal(t, b, back)

	same, err := b.Convert(Imperial)
	require.NoError(t, err)
	assert.Equal(t, b, same)

	_, err = LookupBar(Imperial, 12)
	assert.True(t, errors.Is(err, ErrUnknownRebar))
	_, err = LookupBar(Units("x"), 8)
	assert.True(t, errors.Is(err, ErrUnknownUnits))
}

func TestSizes(t *testing.T) {
	s, err := Sizes(Metric)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 13, 16, 19, 22, 25, 29, 32, 36, 43, 57}, s)
}

func TestGoverning(t *testing.T) {
	l := Loads{Dead: 100, Live: 80}
	u, combo := Governing(l, LoadCombinations)
	assert.InDelta(t, 1.2*100+1.6*80, u, 1e-9)
	assert.Equal(t, "2", combo.ID)

	u, combo = Governing(Loads{Dead: 100}, LoadCombinations)
	assert.InDelta(t, 140, u, 1e-9)
	assert.Equal(t, "1", combo.ID)
}
