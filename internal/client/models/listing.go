// Package models defines the records SnapHire persists.
package models

// Field labels in the order they are written to a profession file.
const (
	LabelProfession  = "Profession: "
	LabelName        = "Name: "
	LabelGender      = "Gender: "
	LabelContact     = "Contact: "
	LabelAddress     = "Address: "
	LabelFees        = "Fees: "
	LabelDescription = "Job Description: "
)

// Listing is one job posting. All fields are free text and are stored
// exactly as entered, including empty values.
type Listing struct {
	Profession  string
	Name        string
	Gender      string
	Contact     string
	Address     string
	Fees        string
	Description string
}

// Lines renders the listing as the seven labelled lines of a block.
func (l Listing) Lines() []string {
	return []string{
		LabelProfession + l.Profession,
		LabelName + l.Name,
		LabelGender + l.Gender,
		LabelContact + l.Contact,
		LabelAddress + l.Address,
		LabelFees + l.Fees,
		LabelDescription + l.Description,
	}
}
