package core

// VariableKey names a column of the employee table
type VariableKey string

// Columns the analysis relies on
const (
	VarAttrition               VariableKey = "Attrition"
	VarAttritionNum            VariableKey = "Attrition_num"
	VarAge                     VariableKey = "Age"
	VarYearsAtCompany          VariableKey = "YearsAtCompany"
	VarMonthlyIncome           VariableKey = "MonthlyIncome"
	VarDepartment              VariableKey = "Department"
	VarJobSatisfaction         VariableKey = "JobSatisfaction"
	VarYearsSinceLastPromotion VariableKey = "YearsSinceLastPromotion"
)

// Attrition labels
const (
	AttritionNo  = "No"
	AttritionYes = "Yes"
)

// String returns the column name
func (k VariableKey) String() string {
	return string(k)
}
