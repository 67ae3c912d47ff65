package assessment

import "guidance-service/internal/domain"

// Bank is the set of questions an assessment draws from.
type Bank []domain.Question

// ForGrade filters the bank down to questions eligible for a grade.
func (b Bank) ForGrade(grade int) []domain.Question {
	var out []domain.Question
	for _, q := range b {
		if q.AppliesTo(grade) {
			out = append(out, q)
		}
	}
	return out
}

// Subjects returns the distinct subjects present in the bank.
func (b Bank) Subjects() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, q := range b {
		if _, ok := seen[q.Subject]; ok {
			continue
		}
		seen[q.Subject] = struct{}{}
		out = append(out, q.Subject)
	}
	return out
}

// DefaultBank is the built-in CBSE-aligned question bank, stratified by grade
// with multiple prompts per subject. It is the fallback when no question_bank
// row is configured in Postgres.
func DefaultBank() Bank {
	return Bank{
		// Mathematics
		{Subject: "Mathematics", Text: "Do you like counting objects and solving number puzzles?", Grades: []int{1, 2, 3, 4, 5}},
		{Subject: "Mathematics", Text: "Do you enjoy drawing shapes and learning about patterns?", Grades: []int{1, 2, 3, 4, 5}},
		{Subject: "Mathematics", Text: "Do you find it fun to solve addition, subtraction or multiplication problems?", Grades: []int{3, 4, 5, 6, 7, 8}},
		{Subject: "Mathematics", Text: "Do you enjoy measuring things and working with fractions or decimals?", Grades: []int{4, 5, 6, 7, 8}},
		{Subject: "Mathematics", Text: "Are you comfortable reading graphs, charts and working with data?", Grades: []int{6, 7, 8}},
		{Subject: "Mathematics", Text: "Do you enjoy solving equations and working with algebraic expressions?", Grades: []int{7, 8, 9, 10}},
		{Subject: "Mathematics", Text: "How comfortable are you solving geometry proofs and coordinate problems?", Grades: []int{9, 10}},
		{Subject: "Mathematics", Text: "Do you find calculus (derivatives, integrals) interesting?", Grades: []int{11, 12}},
		{Subject: "Mathematics", Text: "Are you drawn to topics like probability, statistics and matrices?", Grades: []int{11, 12}},
		{Subject: "Mathematics", Text: "Do you enjoy logical puzzle-solving and number theory?", Grades: []int{9, 10, 11, 12}},

		// Physics
		{Subject: "Physics", Text: "Are you curious about why things fall, float or move?", Grades: []int{6, 7, 8}},
		{Subject: "Physics", Text: "Do you enjoy experiments with light, sound or electricity?", Grades: []int{6, 7, 8}},
		{Subject: "Physics", Text: "Are you fascinated by electricity, magnetism and circuits?", Grades: []int{9, 10}},
		{Subject: "Physics", Text: "Do you enjoy studying motion, forces and laws of physics?", Grades: []int{9, 10}},
		{Subject: "Physics", Text: "Do topics like optics, waves or modern physics excite you?", Grades: []int{11, 12}},
		{Subject: "Physics", Text: "Are you interested in quantum physics, nuclear energy and semiconductors?", Grades: []int{11, 12}},

		// Chemistry
		{Subject: "Chemistry", Text: "Do you enjoy simple experiments like mixing materials and observing reactions?", Grades: []int{6, 7, 8}},
		{Subject: "Chemistry", Text: "Are you curious about atoms, molecules and what things are made of?", Grades: []int{8, 9, 10}},
		{Subject: "Chemistry", Text: "Do chemical reactions, acids and bases spark your interest?", Grades: []int{9, 10}},
		{Subject: "Chemistry", Text: "Are you interested in organic chemistry, carbon compounds and reaction mechanisms?", Grades: []int{11, 12}},
		{Subject: "Chemistry", Text: "Do topics like electrochemistry, thermodynamics and equilibrium interest you?", Grades: []int{11, 12}},

		// Biology
		{Subject: "Biology", Text: "Do you love learning about plants, animals and nature around you?", Grades: []int{1, 2, 3, 4, 5}},
		{Subject: "Biology", Text: "Are you curious about how animals live, feed and grow?", Grades: []int{4, 5, 6, 7, 8}},
		{Subject: "Biology", Text: "Are you interested in cells, microbes and the human body?", Grades: []int{7, 8, 9, 10}},
		{Subject: "Biology", Text: "Do topics like heredity, genetics and evolution fascinate you?", Grades: []int{9, 10}},
		{Subject: "Biology", Text: "Do you enjoy studying body systems - circulatory, nervous, reproductive?", Grades: []int{11, 12}},
		{Subject: "Biology", Text: "Are you interested in plant physiology, ecology and biotechnology?", Grades: []int{11, 12}},

		// History
		{Subject: "History", Text: "Do you like hearing stories about ancient kings, heroes and civilisations?", Grades: []int{1, 2, 3, 4, 5}},
		{Subject: "History", Text: "Do you enjoy learning about medieval empires, battles and historical events?", Grades: []int{5, 6, 7, 8}},
		{Subject: "History", Text: "Are you interested in the freedom struggle, colonialism and modern history?", Grades: []int{8, 9, 10}},
		{Subject: "History", Text: "Do you enjoy analysing primary sources, historical narratives and social movements?", Grades: []int{11, 12}},

		// Geography
		{Subject: "Geography", Text: "Do you enjoy learning about different countries, oceans and continents?", Grades: []int{1, 2, 3, 4, 5}},
		{Subject: "Geography", Text: "Are you curious about climate, seasons and natural landforms?", Grades: []int{5, 6, 7, 8}},
		{Subject: "Geography", Text: "Do topics like India's geography, rivers and resources interest you?", Grades: []int{8, 9, 10}},
		{Subject: "Geography", Text: "Are you interested in geopolitics, human geography and environmental issues?", Grades: []int{11, 12}},

		// Political Science
		{Subject: "Political Science", Text: "Are you interested in how the government and democracy work in India?", Grades: []int{7, 8, 9, 10}},
		{Subject: "Political Science", Text: "Do you follow current affairs, elections and political events?", Grades: []int{9, 10}},
		{Subject: "Political Science", Text: "Do you enjoy studying the Constitution, rights and political theory?", Grades: []int{11, 12}},

		// Economics
		{Subject: "Economics", Text: "Do concepts like demand, supply, prices and markets interest you?", Grades: []int{9, 10}},
		{Subject: "Economics", Text: "Are you interested in macroeconomics - GDP, inflation, banking?", Grades: []int{11, 12}},
		{Subject: "Economics", Text: "Do you enjoy studying how economies grow and how money flows?", Grades: []int{11, 12}},

		// English
		{Subject: "English", Text: "Do you enjoy reading stories, poems and picture books?", Grades: []int{1, 2, 3, 4, 5}},
		{Subject: "English", Text: "Do you like writing stories, letters or creative pieces?", Grades: []int{4, 5, 6, 7, 8}},
		{Subject: "English", Text: "Do you enjoy reading novels, plays and analysing characters?", Grades: []int{7, 8, 9, 10}},
		{Subject: "English", Text: "Are you comfortable writing essays, debates and structured arguments?", Grades: []int{9, 10, 11, 12}},
		{Subject: "English", Text: "Do you enjoy exploring literary themes, poetry and critical analysis?", Grades: []int{11, 12}},

		// Hindi
		{Subject: "Hindi", Text: "Do you like reading and writing in Hindi and listening to Hindi stories?", Grades: []int{1, 2, 3, 4, 5}},
		{Subject: "Hindi", Text: "Are you comfortable composing Hindi essays and understanding grammar?", Grades: []int{5, 6, 7, 8, 9, 10}},
		{Subject: "Hindi", Text: "Do you appreciate Hindi literature, poetry and classic texts?", Grades: []int{9, 10, 11, 12}},

		// Computer Science
		{Subject: "Computer Science", Text: "Do you enjoy using computers and learning basic coding or Scratch?", Grades: []int{3, 4, 5, 6, 7, 8}},
		{Subject: "Computer Science", Text: "Are you interested in programming, web pages and how apps work?", Grades: []int{7, 8, 9, 10}},
		{Subject: "Computer Science", Text: "Do you enjoy coding in Python/Java and understanding algorithms?", Grades: []int{11, 12}},
		{Subject: "Computer Science", Text: "Are you interested in databases, networks and emerging tech like AI?", Grades: []int{11, 12}},

		// Accountancy
		{Subject: "Accountancy", Text: "Do you enjoy recording and organising financial data methodically?", Grades: []int{9, 10}},
		{Subject: "Accountancy", Text: "Do you enjoy creating balance sheets, ledgers and financial statements?", Grades: []int{11, 12}},
		{Subject: "Accountancy", Text: "Are you interested in taxation, auditing and managing accounts?", Grades: []int{11, 12}},

		// Business Studies
		{Subject: "Business Studies", Text: "Are you interested in how businesses are managed and organised?", Grades: []int{11, 12}},
		{Subject: "Business Studies", Text: "Do topics like marketing, advertising and entrepreneurship excite you?", Grades: []int{11, 12}},

		// Physical Education
		{Subject: "Physical Education", Text: "Do you have a passion for sports, fitness or physical activity?", Grades: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{Subject: "Physical Education", Text: "Do you enjoy team sports, athletics or yoga classes?", Grades: []int{6, 7, 8, 9, 10}},

		// Science (general, lower grades)
		{Subject: "Science", Text: "Do you enjoy simple science experiments and nature observations?", Grades: []int{1, 2, 3, 4, 5}},
		{Subject: "Science", Text: "Are you curious about the stars, weather and natural phenomena?", Grades: []int{3, 4, 5, 6}},

		// Social Studies (lower grades)
		{Subject: "Social Studies", Text: "Do you enjoy learning about your community, family and local places?", Grades: []int{1, 2, 3, 4, 5}},
		{Subject: "Social Studies", Text: "Are you curious about different cultures, traditions and festivals?", Grades: []int{4, 5, 6}},

		// Arts & Craft
		{Subject: "Arts & Craft", Text: "Do you love drawing, painting, craft or making creative things?", Grades: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{Subject: "Arts & Craft", Text: "Do you enjoy art projects and expressing yourself creatively?", Grades: []int{3, 4, 5, 6, 7, 8}},
	}
}
