package model

// UserCategory is the closed set of profile categories. The budget and tax
// features branch on it, so unknown values are rejected at the API boundary.
type UserCategory string

const (
	CategoryStudent      UserCategory = "Student"
	CategoryProfessional UserCategory = "Professional"
	CategoryRetired      UserCategory = "Retired"
)

// UserCategories lists the valid profile categories in display order.
func UserCategories() []UserCategory {
	return []UserCategory{CategoryStudent, CategoryProfessional, CategoryRetired}
}

func (c UserCategory) Valid() bool {
	switch c {
	case CategoryStudent, CategoryProfessional, CategoryRetired:
		return true
	}
	return false
}

// ExpenseCategory is the closed set of expense labels.
type ExpenseCategory string

const (
	ExpenseFood          ExpenseCategory = "Food"
	ExpenseTransport     ExpenseCategory = "Transport"
	ExpenseEntertainment ExpenseCategory = "Entertainment"
	ExpenseUtilities     ExpenseCategory = "Utilities"
	ExpenseHealthcare    ExpenseCategory = "Healthcare"
	ExpenseEducation     ExpenseCategory = "Education"
	ExpenseShopping      ExpenseCategory = "Shopping"
	ExpenseOther         ExpenseCategory = "Other"
)

// ExpenseCategories lists the valid expense categories in display order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		ExpenseFood, ExpenseTransport, ExpenseEntertainment, ExpenseUtilities,
		ExpenseHealthcare, ExpenseEducation, ExpenseShopping, ExpenseOther,
	}
}

func (c ExpenseCategory) Valid() bool {
	for _, v := range ExpenseCategories() {
		if c == v {
			return true
		}
	}
	return false
}

// InvestmentType is the closed set of investment instruments.
type InvestmentType string

const (
	InvestmentStocks      InvestmentType = "Stocks"
	InvestmentMutualFunds InvestmentType = "Mutual Funds"
	InvestmentFD          InvestmentType = "FD"
	InvestmentPPF         InvestmentType = "PPF"
	InvestmentNPS         InvestmentType = "NPS"
	InvestmentGold        InvestmentType = "Gold"
	InvestmentRealEstate  InvestmentType = "Real Estate"
	InvestmentCrypto      InvestmentType = "Crypto"
	InvestmentOther       InvestmentType = "Other"
)

// InvestmentTypes lists the valid investment types in display order.
func InvestmentTypes() []InvestmentType {
	return []InvestmentType{
		InvestmentStocks, InvestmentMutualFunds, InvestmentFD, InvestmentPPF,
		InvestmentNPS, InvestmentGold, InvestmentRealEstate, InvestmentCrypto,
		InvestmentOther,
	}
}

func (t InvestmentType) Valid() bool {
	for _, v := range InvestmentTypes() {
		if t == v {
			return true
		}
	}
	return false
}
