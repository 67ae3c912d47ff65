package assessment

import "strings"

// subjectNames maps curriculum subject-selection IDs to display names. The
// IDs follow the CBSE subject picker: stage-specific variants of the same
// subject (e.g. maths-std, maths-basic, maths-sr) collapse onto one name.
var subjectNames = map[string]string{
	"english": "English", "hindi": "Hindi", "maths": "Mathematics", "evs": "EVS",
	"third-lang": "Third Language", "art-craft": "Art & Craft", "pe-primary": "Physical Education",
	"music-dance": "Music / Dance", "hindi-a": "Hindi", "maths-std": "Mathematics (Standard)",
	"maths-basic": "Mathematics (Basic)", "science-910": "Science", "soc-sci": "Social Science",
	"social-sci": "Social Science", "computer-ict": "Computer Applications / ICT",
	"art-ed": "Art Education", "health-pe": "Health & PE", "work-ed": "Work Education",
	"third-lang-mid": "Third Language", "eng-lit": "English", "sanskrit": "Sanskrit",
	"urdu": "Urdu", "other-lang": "Other Language", "comp-apps": "Computer Applications",
	"it-skill": "Information Technology", "home-sci": "Home Science", "elem-biz": "Elements of Business",
	"elem-accounts": "Elements of Accountancy", "painting": "Painting", "music-hind": "Music",
	"ncc-910": "NCC", "eng-core": "English Core", "hindi-core": "Hindi Core",
	"other-lang-sr": "Other Language", "physics": "Physics", "chemistry": "Chemistry",
	"maths-sr": "Mathematics", "biology": "Biology", "accountancy": "Accountancy",
	"biz-studies": "Business Studies", "economics": "Economics", "history": "History",
	"pol-sci": "Political Science", "geography": "Geography", "sociology": "Sociology",
	"psychology": "Psychology", "philosophy": "Philosophy", "comp-sci": "Computer Science",
	"inf-prac": "Informatics Practices", "applied-maths": "Applied Mathematics",
	"pe-sr": "Physical Education", "home-sci-sr": "Home Science", "entrepreneurship": "Entrepreneurship",
	"fine-arts": "Fine Arts", "legal-studies": "Legal Studies", "biotech": "Biotechnology",
	"eng-graphics": "Engineering Graphics", "multimedia": "Multimedia & Web Tech",
	"dance": "Dance", "music-sr": "Music", "ncc-sr": "NCC",
}

// boostKeys maps subject display names to the canonical subject keys used in
// stream weights. Composite subjects expand to every stream subject they
// cover (Science counts for Physics, Chemistry and Biology).
var boostKeys = map[string][]string{
	"Physics": {"Physics"}, "Chemistry": {"Chemistry"}, "Mathematics": {"Mathematics"},
	"Mathematics (Standard)": {"Mathematics"}, "Mathematics (Basic)": {"Mathematics"},
	"Applied Mathematics": {"Mathematics"}, "Biology": {"Biology"},
	"Accountancy": {"Accountancy"}, "Business Studies": {"Business Studies"},
	"Economics": {"Economics"}, "History": {"History"}, "Geography": {"Geography"},
	"Political Science": {"Political Science"}, "Computer Science": {"Computer Science"},
	"Informatics Practices": {"Computer Science"}, "English": {"English"},
	"English Core": {"English"}, "Physical Education": {"Physical Education"},
	"Science": {"Physics", "Chemistry", "Biology"}, "Social Science": {"History", "Geography"},
}

const customSubjectPrefix = "custom_"

// SubjectName resolves a subject-selection ID to its display name. Free-form
// subjects entered by the student arrive as "custom_<slug>" and are restored
// to title case. Unknown IDs resolve to ("", false).
func SubjectName(id string) (string, bool) {
	if slug, ok := strings.CutPrefix(id, customSubjectPrefix); ok {
		return titleCase(strings.ReplaceAll(slug, "-", " ")), true
	}
	name, ok := subjectNames[id]
	return name, ok
}

// SubjectDisplayNames resolves a list of subject IDs, dropping unknowns.
func SubjectDisplayNames(ids []string) []string {
	var names []string
	for _, id := range ids {
		if name, ok := SubjectName(id); ok {
			names = append(names, name)
		}
	}
	return names
}

// BoostSet expands subject display names into the set of canonical subject
// keys that receive the boost multiplier during stream ranking.
func BoostSet(names []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range names {
		for _, key := range boostKeys[name] {
			set[key] = struct{}{}
		}
	}
	return set
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
