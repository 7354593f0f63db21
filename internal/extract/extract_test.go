package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalary_CurrencyRange(t *testing.T) {
	got := Salary("Salary: $50,000 - $70,000/year with great benefits")
	assert.Equal(t, "$50,000 - $70,000/year", got)
}

func TestSalary_SingleCurrencyAmount(t *testing.T) {
	got := Salary("We pay $120,000/year for this role")
	assert.Equal(t, "$120,000/year", got)
}

func TestSalary_BareKShorthand(t *testing.T) {
	got := Salary("Compensation around 80 - 120k depending on experience")
	assert.Equal(t, "80 - 120k", got)
}

func TestSalary_CurrencyCode(t *testing.T) {
	got := Salary("Offering PKR 150,000/month")
	assert.Equal(t, "PKR 150,000/month", got)
}

func TestSalary_RupeePrefix(t *testing.T) {
	got := Salary("Pay: Rs. 90,000 monthly")
	assert.Equal(t, "Rs. 90,000", got)
}

func TestSalary_NoMatch(t *testing.T) {
	assert.Equal(t, "Not specified", Salary("no numbers here"))
}

func TestSalary_RangeBeforeBareNumber(t *testing.T) {
	// The explicit currency range must win over the bare "70,000" match.
	got := Salary("$50,000 - $70,000/year")
	assert.Equal(t, "$50,000 - $70,000/year", got)
}

func TestExperience_YearsPhrase(t *testing.T) {
	got := Experience("Requires 3+ years of experience in backend")
	assert.Contains(t, got, "3+")
	assert.Contains(t, got, "experience")
}

func TestExperience_YearRange(t *testing.T) {
	got := Experience("Looking for 2 - 4 years of relevant experience")
	assert.Contains(t, got, "2 - 4")
	assert.Contains(t, got, "experience")
}

func TestExperience_SeniorityKeyword(t *testing.T) {
	got := Experience("This is a senior level position")
	assert.Contains(t, got, "senior")
}

func TestExperience_Fresher(t *testing.T) {
	assert.Equal(t, "fresher", Experience("Suitable for a fresher candidate"))
}

func TestExperience_NoMatch(t *testing.T) {
	assert.Equal(t, "Not specified", Experience("great team and flexible hours"))
}

func TestExperience_CaseInsensitive(t *testing.T) {
	got := Experience("ENTRY LEVEL role in support")
	assert.Contains(t, got, "ENTRY LEVEL")
}
