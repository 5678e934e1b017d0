package domain

// Choices offered by the signup forms. They are suggestions; the forms accept any value.
var (
	JobCourses = []string{"B.Tech", "M.Tech", "MBA", "MCA", "BCA"}
	JobYears   = []string{"2024", "2025", "2026"}

	StudentCourses = []string{
		"B.Tech Computer Science", "B.Tech Electronics", "B.Tech Mechanical", "B.Tech Civil",
		"BBA", "B.Com", "B.Sc", "MBA", "MCA", "M.Tech",
	}
	StudentYears = []string{"1st Year", "2nd Year", "3rd Year", "4th Year", "Recent Graduate"}

	UniversityDesignations = []string{"Placement Officer", "Dean of Students", "Professor", "Other"}
	EmployerRoles          = []string{"founder", "hr", "recruiter", "other"}

	PartnerColleges = []string{
		"Indian Institute of Technology (IIT) Delhi",
		"Indian Institute of Technology (IIT) Bombay",
		"Indian Institute of Technology (IIT) Madras",
		"Indian Institute of Technology (IIT) Kanpur",
		"Indian Institute of Technology (IIT) Kharagpur",
		"Birla Institute of Technology and Science (BITS) Pilani",
		"National Institute of Technology (NIT) Trichy",
		"National Institute of Technology (NIT) Warangal",
		"National Institute of Technology (NIT) Surathkal",
		"Delhi Technological University (DTU)",
		"Netaji Subhas University of Technology (NSUT)",
		"Vellore Institute of Technology (VIT)",
		"Manipal Institute of Technology",
		"PSG College of Technology",
		"College of Engineering Pune (COEP)",
	}

	PopularSkills = []string{
		"Python", "Java", "JavaScript", "React", "Node.js", "SQL", "MongoDB",
		"Machine Learning", "Data Analysis", "AWS", "Docker", "Git",
		"C++", "HTML/CSS", "TypeScript", "Angular", "Vue.js",
	}
)
