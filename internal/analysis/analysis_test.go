package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioRows is the four-passenger table used across the summary tests.
var scenarioRows = []string{
	"Survived,Pclass,Sex,Age,SibSp,Parch,Fare,Embarked",
	"0,3,male,22,1,0,7.25,S",
	"1,1,female,,1,0,71.28,C",
	"1,1,female,35,0,0,53.1,S",
	"0,3,male,28,0,0,8.05,S",
}

func loadRows(t *testing.T, rows []string) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Read(strings.NewReader(strings.Join(rows, "\n")+"\n"), "scenario.csv")
	require.NoError(t, err)
	return tbl
}

func TestScenarioStructure(t *testing.T) {
	tbl := loadRows(t, scenarioRows)

	rep, err := Info(tbl)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Rows)
	assert.Equal(t, 8, rep.ColumnCount())

	byName := map[string]ColumnInfo{}
	for _, c := range rep.Cols {
		byName[c.Name] = c
	}
	assert.Equal(t, 3, byName["Age"].NonNull)
	assert.Equal(t, 1, byName["Age"].Missing)
	assert.Equal(t, "float64", byName["Age"].DType)
	assert.Equal(t, "object", byName["Sex"].DType)
	assert.Equal(t, "int64", byName["Survived"].DType)
}

func TestScenarioDescribe(t *testing.T) {
	tbl := loadRows(t, scenarioRows)

	stats, err := Describe(tbl)
	require.NoError(t, err)
	names := make([]string, len(stats))
	for i, s := range stats {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Survived", "Pclass", "Age", "SibSp", "Parch", "Fare"}, names)

	age, err := DescribeColumn(tbl, "Age")
	require.NoError(t, err)
	assert.Equal(t, 3, age.Count)
	assert.InDelta(t, 85.0/3.0, age.Mean, 1e-9)
	assert.Equal(t, 22.0, age.Min)
	assert.Equal(t, 25.0, age.Q25)
	assert.Equal(t, 28.0, age.Q50)
	assert.Equal(t, 31.5, age.Q75)
	assert.Equal(t, 35.0, age.Max)
	assert.InDelta(t, 6.5064071, age.Std, 1e-6)

	_, err = DescribeColumn(tbl, "Sex")
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestDescribeQuartilesWithinRange(t *testing.T) {
	vals := []float64{5, math.NaN(), 1, 9, 3, 3, math.NaN(), 12, 0.5}
	s := DescribeValues("x", vals)
	assert.Equal(t, 7, s.Count)
	for _, q := range []float64{s.Q25, s.Q50, s.Q75} {
		assert.LessOrEqual(t, s.Min, q)
		assert.LessOrEqual(t, q, s.Max)
	}
	assert.LessOrEqual(t, s.Q25, s.Q50)
	assert.LessOrEqual(t, s.Q50, s.Q75)
}

func TestDescribeDegenerate(t *testing.T) {
	empty := DescribeValues("none", []float64{math.NaN()})
	assert.Equal(t, 0, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))

	one := DescribeValues("one", []float64{4})
	assert.Equal(t, 4.0, one.Mean)
	assert.True(t, math.IsNaN(one.Std))
}

func TestScenarioValueCounts(t *testing.T) {
	tbl := loadRows(t, scenarioRows)

	sex, err := ValueCounts(tbl, "Sex")
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{{"male", 2}, {"female", 2}}, sex)

	class, err := ValueCounts(tbl, "Pclass")
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{{"3", 2}, {"1", 2}}, class)

	port, err := ValueCounts(tbl, "Embarked")
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{{"S", 3}, {"C", 1}}, port)
}

func TestValueCountsSkipMissing(t *testing.T) {
	rows := append([]string(nil), scenarioRows...)
	rows = append(rows, "1,2,female,40,0,1,13,", "0,2,male,,0,0,13,Q")
	tbl := loadRows(t, rows)

	port, err := ValueCounts(tbl, "Embarked")
	require.NoError(t, err)
	nn, err := tbl.NonNull("Embarked")
	require.NoError(t, err)
	assert.Equal(t, nn, Total(port))
	assert.Less(t, Total(port), tbl.Rows())
	for _, c := range port {
		assert.NotEmpty(t, c.Value)
	}
}

func TestScenarioCorrelation(t *testing.T) {
	tbl := loadRows(t, scenarioRows)

	m, err := PairwiseCorrelation(tbl, dataset.NumericColumns())
	require.NoError(t, err)
	require.Equal(t, 6, m.Len())

	assert.Less(t, m.At(0, 1), 0.0, "class and outcome move in opposite directions")
	assert.InDelta(t, -1.0, m.At(0, 1), 1e-9)
	for i := 0; i < m.Len(); i++ {
		assert.Equal(t, 1.0, m.At(i, i))
		for j := 0; j < m.Len(); j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i))
			if r := m.At(i, j); !math.IsNaN(r) {
				assert.GreaterOrEqual(t, r, -1.0)
				assert.LessOrEqual(t, r, 1.0)
			}
		}
	}
	// Parch is constant in the scenario.
	assert.True(t, math.IsNaN(m.At(4, 0)))
	// Age pairs use only the three rows with an age.
	assert.Equal(t, 3, m.Pairs[2][5])
	assert.Equal(t, 4, m.Pairs[0][5])
	assert.Equal(t, 3, m.MinPairs())

	_, err = PairwiseCorrelation(tbl, []string{"Sex", "Age"})
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestCompleteCasesNotLargerThanPairwise(t *testing.T) {
	rows := append([]string(nil), scenarioRows...)
	rows = append(rows, "1,2,female,40,0,1,,S", "0,2,male,31,1,2,26,Q")
	tbl := loadRows(t, rows)
	cols := dataset.NumericColumns()

	m, err := PairwiseCorrelation(tbl, cols)
	require.NoError(t, err)
	cc, err := tbl.CompleteCases(cols...)
	require.NoError(t, err)

	assert.Equal(t, 4, cc.Rows())
	assert.LessOrEqual(t, cc.Rows(), m.MinPairs())
}

func TestGroupMeansScenario(t *testing.T) {
	tbl := loadRows(t, scenarioRows)
	boot := Bootstrap{Samples: 200, Level: 95, Seed: 1}

	sex, err := GroupMeans(tbl, "Sex", "Survived", boot)
	require.NoError(t, err)
	require.Len(t, sex, 2)
	assert.Equal(t, "male", sex[0].Label)
	assert.Equal(t, 0.0, sex[0].Mean)
	assert.Equal(t, 1.0, sex[1].Mean)
	assert.Equal(t, 1.0, sex[1].Low)
	assert.Equal(t, 1.0, sex[1].High)

	class, err := GroupMeans(tbl, "Pclass", "Survived", boot)
	require.NoError(t, err)
	require.Len(t, class, 2)
	assert.Equal(t, "1", class[0].Label, "numeric categories sort ascending")
	assert.Equal(t, "3", class[1].Label)
}

func TestBootstrapIntervalBracketsMean(t *testing.T) {
	rows := []string{"Survived,Group"}
	for i := 0; i < 40; i++ {
		rows = append(rows, map[bool]string{true: "1,a", false: "0,a"}[i%3 == 0])
	}
	tbl := loadRows(t, rows)
	boot := Bootstrap{Samples: 500, Level: 95, Seed: 42}

	first, err := GroupMeans(tbl, "Group", "Survived", boot)
	require.NoError(t, err)
	again, err := GroupMeans(tbl, "Group", "Survived", boot)
	require.NoError(t, err)
	assert.Equal(t, first, again, "fixed seed is reproducible")

	g := first[0]
	assert.Equal(t, 40, g.N)
	assert.LessOrEqual(t, g.Low, g.Mean)
	assert.GreaterOrEqual(t, g.High, g.Mean)
	assert.Less(t, g.Low, g.High)

	off, err := GroupMeans(tbl, "Group", "Survived", Bootstrap{})
	require.NoError(t, err)
	assert.Equal(t, off[0].Mean, off[0].Low)
}

func TestKDEIntegratesToOne(t *testing.T) {
	vals := []float64{22, 38, 26, 35, 35, math.NaN(), 54, 2, 27, 14, 4, 58, 20, 39}
	c := KDE(vals, KDEOptions{Points: 400, Cut: 3})
	require.Len(t, c.X, 400)

	area := 0.0
	for i := 1; i < len(c.X); i++ {
		area += (c.X[i] - c.X[i-1]) * (c.Y[i] + c.Y[i-1]) / 2
	}
	assert.InDelta(t, 1.0, area, 0.01)

	assert.Empty(t, KDE([]float64{3, 3, 3}, KDEOptions{}).X)
	assert.Empty(t, KDE([]float64{1}, KDEOptions{}).X)

	scaled := c.Scale(2)
	assert.InDelta(t, 2*c.Y[100], scaled.Y[100], 1e-12)
}

func TestLog1pDropsMissing(t *testing.T) {
	out := Log1p([]float64{0, math.NaN(), math.E - 1})
	require.Len(t, out, 2)
	assert.Equal(t, 0.0, out[0])
	assert.InDelta(t, 1.0, out[1], 1e-12)
}
