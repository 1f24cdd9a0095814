////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package search

// Category is one predefined keyword filter. A record matches the category
// when any keyword occurs as a substring of its combined caption, object
// name, and date text.
type Category struct {
	ID       string
	Name     string
	Keywords []string
}

// Categories returns the predefined filters in display order.
func Categories() []Category {
	return categories
}

// categoryByID returns the category with the id, or nil for unknown ids.
func categoryByID(id string) *Category {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}

var categories = []Category{
	{ID: "galaxie", Name: "Galaxies", Keywords: []string{
		"galaxie", "galaxy", "andromède", "voie lactée", "tourbillon",
		"spiral"}},
	{ID: "nebuleuse", Name: "Nébuleuses", Keywords: []string{
		"nébuleuse", "nebula", "emission", "crabe", "aigle", "orion",
		"lagune"}},
	{ID: "amas", Name: "Amas", Keywords: []string{
		"amas", "cluster", "globulaire", "ouvert", "hercule", "pléiades"}},
	{ID: "planete", Name: "Planètes", Keywords: []string{
		"planète", "planet", "jupiter", "mars", "saturne", "venus",
		"mercure", "uranus", "neptune"}},
	{ID: "lune", Name: "Lune", Keywords: []string{
		"lune", "moon", "crater", "cratère", "mare"}},
	{ID: "soleil", Name: "Soleil", Keywords: []string{
		"soleil", "sun", "solar", "prominences", "taches"}},
}
