package seed

import "github.com/simhub/apiserver/types"

// ExpertSkills is the catalog of skill tags for expert profiles.
var ExpertSkills = []string{
	"Unity Development", "Unreal Engine Development", "VR Training Design", "AR Application Development",
	"Simulation Software Architecture", "Physics Engine Expertise", "AI for NPCs", "Haptic Integration",
	"Motion Capture Setup", "Driving Simulator Hardware", "Flight Simulator Hardware", "Medical Simulation Hardware",
	"Instructional Design for Simulations", "Scenario Scripting", "Performance Analytics in Simulations",
	"3D Modeling (Blender, Maya)", "CAD for Simulation", "System Integration (Hardware/Software)",
}

// Experts returns the sample expert dataset used to bootstrap an empty store.
func Experts() []types.Expert {
	return []types.Expert{
		{
			ID:            "expert1",
			Name:          "Dr. Aris Thorne",
			Title:         "Lead VR Simulation Developer & Trainer",
			Avatar:        "https://randomuser.me/api/portraits/men/75.jpg",
			HourlyRate:    120,
			Skills:        []string{"Unity Development", "VR Training Design", "C#", "Instructional Design for Simulations", "Medical Simulation"},
			Rating:        4.9,
			TotalEarnings: 85000,
			JobsCompleted: 22,
			Description:   "PhD in Human-Computer Interaction with 10+ years creating immersive VR training simulations for high-risk industries. Proven ability to translate complex procedures into effective virtual learning experiences.",
			Location:      "Boston, MA",
			Languages:     []string{"English", "German"},
			Education: []types.Education{
				{Degree: "PhD Human-Computer Interaction", Institution: "MIT", Year: "2014"},
			},
			WorkHistory: []types.WorkItem{
				{
					Title:          "Surgical Procedure VR Trainer",
					Description:    "Developed a haptic-enabled VR simulation for a complex surgical procedure, reducing training time by 30%.",
					CompletedDate:  "2024-10-01",
					ClientFeedback: "Aris is a true visionary. The simulation exceeded all expectations.",
				},
			},
		},
		{
			ID:            "expert2",
			Name:          `Javier "Jax" Ramirez`,
			Title:         "Simulation Hardware Rig Specialist",
			Avatar:        "https://randomuser.me/api/portraits/men/43.jpg",
			HourlyRate:    95,
			Skills:        []string{"Driving Simulator Hardware", "Flight Simulator Hardware", "Motion Capture Setup", "Haptic Integration", "System Integration (Hardware/Software)"},
			Rating:        4.8,
			TotalEarnings: 62000,
			JobsCompleted: 35,
			Description:   "Expert in designing, building, and maintaining custom hardware rigs for driving, flight, and industrial simulations. Full-stack hardware solutions from component sourcing to final calibration.",
			Location:      "Remote / On-site Travel",
			Languages:     []string{"English", "Spanish"},
			Education: []types.Education{
				{Degree: "BEng Mechatronics", Institution: "CalPoly", Year: "2016"},
			},
			WorkHistory: []types.WorkItem{
				{
					Title:          "Custom F1 Racing Simulator Build",
					Description:    "Designed and constructed a professional-grade F1 simulator with full motion and direct drive feedback for a racing team.",
					CompletedDate:  "2025-01-15",
					ClientFeedback: "Jax's attention to detail is incredible. The rig is a masterpiece.",
				},
			},
		},
		{
			ID:            "expert3",
			Name:          "Lena Petrova",
			Title:         "Simulation Software Architect (Unreal Engine)",
			Avatar:        "https://randomuser.me/api/portraits/women/68.jpg",
			HourlyRate:    110,
			Skills:        []string{"Unreal Engine Development", "C++", "Simulation Software Architecture", "AI for NPCs", "Physics Engine Expertise"},
			Rating:        4.9,
			TotalEarnings: 92000,
			JobsCompleted: 18,
			Description:   "Specializing in large-scale simulation environments using Unreal Engine. Expert in optimizing performance and creating believable AI behaviors for complex scenarios.",
			Location:      "Berlin, Germany",
			Languages:     []string{"English", "Russian", "German"},
			Education: []types.Education{
				{Degree: "MSc Computer Science (Graphics)", Institution: "TU Berlin", Year: "2015"},
			},
			WorkHistory: []types.WorkItem{
				{
					Title:          "Urban Traffic Simulation Platform",
					Description:    "Architected and led development of a city-scale traffic simulation with thousands of AI agents for urban planning research.",
					CompletedDate:  "2024-11-20",
					ClientFeedback: "Lena's expertise in Unreal was crucial to our project's success.",
				},
			},
		},
	}
}
