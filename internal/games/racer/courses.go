package racer

import "github.com/vovakirdan/retro-arcade/internal/road"

// Course is a named bend layout. Bends are given as fractions of the lap so
// the same course works for any configured segment count.
type Course struct {
	Name  string
	Bends []bendFrac
}

type bendFrac struct {
	from, to float64 // fraction of the lap, from inclusive
	curve    float64
}

// Courses lists the built-in courses in selector order.
var Courses = []Course{
	{
		// The classic layout: a right-hander then a longer left-hander.
		Name: "Coastline",
	},
	{
		Name: "Canyon Run",
		Bends: []bendFrac{
			{0.06, 0.14, 1.5},
			{0.16, 0.24, -1.5},
			{0.28, 0.33, 2},
			{0.35, 0.40, -2},
			{0.46, 0.58, 1},
			{0.62, 0.70, -2.5},
			{0.74, 0.80, 2.5},
			{0.84, 0.94, -1},
		},
	},
	{
		Name: "Oval",
		Bends: []bendFrac{
			{0.10, 0.40, 1.2},
			{0.60, 0.90, 1.2},
		},
	},
}

// Plan builds the curve plan of the course for a track of count segments.
func (c Course) Plan(count int) road.CurvePlan {
	if len(c.Bends) == 0 {
		return road.DefaultPlan(count)
	}
	plan := make(road.CurvePlan, 0, len(c.Bends))
	for _, b := range c.Bends {
		start, end := int(b.from*float64(count)), int(b.to*float64(count))
		if start >= end {
			continue
		}
		plan = append(plan, road.Bend{Start: start, End: end, Curve: b.curve})
	}
	return plan
}

// CourseNames returns the names of the built-in courses.
func CourseNames() []string {
	names := make([]string, len(Courses))
	for i, c := range Courses {
		names[i] = c.Name
	}
	return names
}

// CourseIndex finds a course by name, case-sensitively. ok is false if none matches.
func CourseIndex(name string) (int, bool) {
	for i, c := range Courses {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}
