package dataset

// Column names of the Titanic passenger CSV used by the analysis steps.
const (
	ColSurvived = "Survived"
	ColPclass   = "Pclass"
	ColSex      = "Sex"
	ColAge      = "Age"
	ColSibSp    = "SibSp"
	ColParch    = "Parch"
	ColFare     = "Fare"
	ColEmbarked = "Embarked"
)

// RequiredColumns must be present in the header for a table to load.
var RequiredColumns = []string{
	ColSurvived, ColPclass, ColSex, ColAge, ColSibSp, ColParch, ColFare, ColEmbarked,
}

// NumericColumns are the six columns used by the correlation heatmap and the pair plot.
func NumericColumns() []string {
	return []string{ColSurvived, ColPclass, ColAge, ColSibSp, ColParch, ColFare}
}

// CategoricalColumns are the columns reported by value counts and survival-rate bars.
func CategoricalColumns() []string {
	return []string{ColPclass, ColSex, ColEmbarked}
}
