package assessment

import "guidance-service/internal/domain"

// streamCatalog holds the four CBSE streams recommended for grades 9-12.
// Weights are fixed constants; catalog order breaks ranking ties.
var streamCatalog = []domain.StreamProfile{
	{
		Name:     "Science (PCM)",
		Subjects: []string{"Physics", "Chemistry", "Mathematics", "English", "Computer Science"},
		Weights:  map[string]float64{"Physics": 3, "Chemistry": 3, "Mathematics": 3, "English": 1, "Computer Science": 2},
		Careers:  []string{"Engineering", "Architecture", "Pilot", "Data Scientist", "IT Professional"},
	},
	{
		Name:     "Science (PCB)",
		Subjects: []string{"Physics", "Chemistry", "Biology", "English", "Physical Education"},
		Weights:  map[string]float64{"Physics": 2, "Chemistry": 3, "Biology": 3, "English": 1, "Physical Education": 1},
		Careers:  []string{"Doctor", "Nurse", "Biotechnologist", "Pharmacist", "Nutritionist"},
	},
	{
		Name:     "Commerce",
		Subjects: []string{"Accountancy", "Business Studies", "Economics", "English", "Mathematics"},
		Weights:  map[string]float64{"Accountancy": 3, "Business Studies": 3, "Economics": 3, "English": 1, "Mathematics": 2},
		Careers:  []string{"CA", "Banker", "Entrepreneur", "Financial Analyst", "Marketing Manager"},
	},
	{
		Name:     "Humanities / Arts",
		Subjects: []string{"History", "Geography", "Political Science", "Economics", "English"},
		Weights:  map[string]float64{"History": 3, "Geography": 2, "Political Science": 3, "Economics": 2, "English": 2},
		Careers:  []string{"IAS/IPS Officer", "Journalist", "Lawyer", "Social Worker", "Psychologist"},
	},
}

// learningDomains groups subjects into the coarse domains reported for
// grades below 9, where formal streams do not yet apply.
var learningDomains = []struct {
	Name     string
	Subjects []string
}{
	{Name: "STEM & Logic", Subjects: []string{"Mathematics", "Science", "Physics", "Chemistry"}},
	{Name: "Life Sciences", Subjects: []string{"Biology"}},
	{Name: "Technology", Subjects: []string{"Computer Science"}},
	{Name: "Languages & Communication", Subjects: []string{"English", "Hindi"}},
	{Name: "Social Sciences & Humanities", Subjects: []string{"History", "Geography", "Political Science", "Social Studies"}},
	{Name: "Business & Finance", Subjects: []string{"Economics", "Accountancy", "Business Studies"}},
	{Name: "Sports & Wellness", Subjects: []string{"Physical Education"}},
	{Name: "Creative Arts", Subjects: []string{"Arts & Craft"}},
}

// Streams returns the stream catalog for grades 9-12.
func Streams() []domain.StreamProfile {
	return streamCatalog
}

// DomainOf returns the learning domain a subject belongs to, or "Other" for
// subjects outside the domain table.
func DomainOf(subject string) string {
	for _, d := range learningDomains {
		for _, s := range d.Subjects {
			if s == subject {
				return d.Name
			}
		}
	}
	return "Other"
}
