package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var passengerRows = []string{
	"PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked",
	`1,0,3,"Braund, Mr. Owen Harris",male,22,1,0,A/5 21171,7.25,,S`,
	`2,1,1,"Cumings, Mrs. John Bradley",female,,1,0,PC 17599,71.2833,C85,C`,
	`3,1,1,"Futrelle, Mrs. Jacques Heath",female,35,0,0,113803,53.1,C123,S`,
	`4,0,3,"Allen, Mr. William Henry",male,28,0,0,373450,8.05,,`,
}

func writeCSV(t *testing.T, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644))
	return path
}

func TestLoadShapeAndKinds(t *testing.T) {
	tbl, err := Load(writeCSV(t, passengerRows))
	require.NoError(t, err)

	assert.Equal(t, "train.csv", tbl.Name())
	assert.Equal(t, 4, tbl.Rows())
	assert.Len(t, tbl.Columns(), 12)

	k, err := tbl.Kind(ColAge)
	require.NoError(t, err)
	assert.Equal(t, KindNumeric, k)
	k, err = tbl.Kind(ColSex)
	require.NoError(t, err)
	assert.Equal(t, KindCategorical, k)

	dt, err := tbl.DType(ColAge)
	require.NoError(t, err)
	assert.Equal(t, "float64", dt, "integer column with a gap reports float64")
	dt, err = tbl.DType(ColPclass)
	require.NoError(t, err)
	assert.Equal(t, "int64", dt)
	dt, err = tbl.DType("Name")
	require.NoError(t, err)
	assert.Equal(t, "object", dt)
}

func TestFloatsMarksMissingAsNaN(t *testing.T) {
	tbl, err := Load(writeCSV(t, passengerRows))
	require.NoError(t, err)

	ages, err := tbl.Floats(ColAge)
	require.NoError(t, err)
	require.Len(t, ages, 4)
	assert.Equal(t, 22.0, ages[0])
	assert.True(t, math.IsNaN(ages[1]))

	nn, err := tbl.NonNull(ColAge)
	require.NoError(t, err)
	assert.Equal(t, 3, nn)

	_, err = tbl.Floats(ColSex)
	assert.Error(t, err)
}

func TestStringsPresenceMask(t *testing.T) {
	tbl, err := Load(writeCSV(t, passengerRows))
	require.NoError(t, err)

	vals, present, err := tbl.Strings(ColEmbarked)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false}, present)
	assert.Equal(t, "S", vals[0])
	assert.Equal(t, "", vals[3])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeCSV(t, []string{"Survived,Sex", "1,female"})
	_, err := Load(path)
	require.Error(t, err)

	var mce *MissingColumnsError
	require.True(t, errors.As(err, &mce))
	assert.Contains(t, mce.Columns, ColFare)
	assert.Contains(t, mce.Columns, ColEmbarked)
	assert.NotContains(t, mce.Columns, ColSex)
}

func TestUnknownColumn(t *testing.T) {
	tbl, err := Load(writeCSV(t, passengerRows))
	require.NoError(t, err)
	_, err = tbl.Floats("Deck")
	assert.True(t, errors.Is(err, ErrUnknownColumn))
}

func TestCompleteCasesDropsRowsWithAnyGap(t *testing.T) {
	tbl, err := Load(writeCSV(t, passengerRows))
	require.NoError(t, err)

	cc, err := tbl.CompleteCases(NumericColumns()...)
	require.NoError(t, err)
	assert.Equal(t, 3, cc.Rows())
	assert.Equal(t, 4, tbl.Rows(), "source table is untouched")

	fares, err := cc.Floats(ColFare)
	require.NoError(t, err)
	assert.Equal(t, []float64{7.25, 53.1, 8.05}, fares)
}

func TestHeadRendersNaN(t *testing.T) {
	tbl, err := Load(writeCSV(t, passengerRows))
	require.NoError(t, err)

	head := tbl.Head(5)
	require.Len(t, head, 4)
	ageIdx := 5
	assert.Equal(t, "22.0", head[0][ageIdx])
	assert.Equal(t, "NaN", head[1][ageIdx])
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "22.0", FormatFloat(22))
	assert.Equal(t, "71.2833", FormatFloat(71.2833))
	assert.Equal(t, "NaN", FormatFloat(math.NaN()))
}
