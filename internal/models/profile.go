package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Profile holds the matching-relevant data a user fills in. Skills,
// interests and availability are stored as JSON string arrays.
type Profile struct {
	BaseModel
	UserID       string         `gorm:"uniqueIndex;not null"`
	DisplayName  string         `gorm:"size:255"`
	Bio          string         `gorm:"type:text"`
	Skills       datatypes.JSON `gorm:"type:jsonb"`
	Interests    datatypes.JSON `gorm:"type:jsonb"`
	Goals        string         `gorm:"type:text"`
	Availability datatypes.JSON `gorm:"type:jsonb"`
	Location     string         `gorm:"size:255"` // "City, Country"
}

func (p *Profile) GetSkills() []string {
	return parseStringArray(p.Skills)
}

func (p *Profile) SetSkills(skills []string) {
	p.Skills = formatStringArray(skills)
}

func (p *Profile) GetInterests() []string {
	return parseStringArray(p.Interests)
}

func (p *Profile) SetInterests(interests []string) {
	p.Interests = formatStringArray(interests)
}

func (p *Profile) GetAvailability() []string {
	return parseStringArray(p.Availability)
}

func (p *Profile) SetAvailability(slots []string) {
	p.Availability = formatStringArray(slots)
}

func parseStringArray(data datatypes.JSON) []string {
	var values []string
	if len(data) > 0 {
		json.Unmarshal(data, &values)
	}
	return values
}

func formatStringArray(values []string) datatypes.JSON {
	if len(values) == 0 {
		return datatypes.JSON("[]")
	}
	jsonData, _ := json.Marshal(values)
	return datatypes.JSON(jsonData)
}
