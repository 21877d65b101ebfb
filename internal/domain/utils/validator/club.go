package validator

import "unicode/utf8"

// MinPeople is the smallest allowed capacity for clubs and events: the
// owner plus at least one other person.
const MinPeople = 2

func ClubName(name string) bool {
	return utf8.RuneCountInString(name) >= 3 && utf8.RuneCountInString(name) <= 30
}

func ClubDescription(description string) bool {
	return utf8.RuneCountInString(description) <= 500
}

func MaxPeople(maxPeople int) bool {
	return maxPeople >= MinPeople
}
