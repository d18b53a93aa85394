// Package recipes maps calendar dates to the keto recipe of the day.
//
// The mapping cycles through a fixed table: the recipe for a date is
// table[(dayOfYear-1) mod len(table)]. Leap days and year boundaries are
// not special-cased.
package recipes

import "time"

var table = [...]string{
	"Huevos revueltos con aguacate y tocino",
	"Salmón al horno con mantequilla de ajo y espárragos",
	"Pollo cremoso con champiñones y espinaca",
	"Ensalada keto de atún con mayonesa y pepino",
	"Tacos keto con hojas de lechuga y carne molida",
	"Bowl de coliflor salteada con camarones",
	"Albóndigas en salsa de tomate sin azúcar con queso",
	"Pimientos rellenos de queso crema y pollo",
	"Lasaña keto con láminas de calabacín",
	"Omelette de queso cheddar y jamón serrano",
	"Chuletas de cerdo con puré de coliflor",
	"Ensalada César keto con pollo y parmesano",
}

// Count is the number of recipes in the cycle.
const Count = len(table)

// Daily is the recipe assigned to a date.
type Daily struct {
	DayOfYear int // 1-based, 1..366
	Date      time.Time
	Title     string
}

// For returns the recipe of the day for date, using date's own location.
func For(date time.Time) Daily {
	day := date.YearDay()
	return Daily{
		DayOfYear: day,
		Date:      date,
		Title:     table[(day-1)%Count],
	}
}

// Titles returns a copy of the recipe table in cycle order.
func Titles() []string {
	out := make([]string, Count)
	copy(out, table[:])
	return out
}
