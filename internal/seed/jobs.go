// Package seed holds the bundled sample datasets and the category/tag
// catalogs used by the collection stores. Each dataset function returns a
// fresh slice so callers can mutate their copy freely.
package seed

import (
	"time"

	"github.com/simhub/apiserver/types"
)

// JobCategories is the catalog of job categories offered by the UI.
var JobCategories = []string{
	"VR/AR Development",
	"Simulation Software Development",
	"Hardware Integration",
	"Training Program Development",
	"Research & Analysis",
	"3D Modeling & Animation",
	"Scenario Design",
	"System Administration (Simulation)",
	"Other Simulation Services",
}

// JobSkills is the catalog of skill tags for jobs.
var JobSkills = []string{
	"Unity", "Unreal Engine", "C#", "C++", "Python", "VR SDKs (Oculus, SteamVR)", "AR SDKs (ARKit, ARCore)",
	"Physics Simulation", "AI for Simulations", "Data Visualization", "Haptic Feedback Integration",
	"Motion Capture", "Flight Simulation", "Driving Simulation", "Medical Simulation", "Industrial Training Simulation",
	"Blender", "Maya", "3ds Max", "CAD Software", "Instructional Design", "LMS Integration",
}

// Jobs returns the sample job dataset used to bootstrap an empty store.
// Proposal counts start at zero to keep the count/list invariant intact.
func Jobs() []types.Job {
	return []types.Job{
		{
			ID:          "simjob1",
			Title:       "VR Crane Operator Training Module",
			Description: "Seeking an expert VR developer to create a realistic crane operation training module. Must include physics-based interactions and performance tracking.",
			Budget:      15000,
			Duration:    "3-4 months",
			Skills:      []string{"Unity", "C#", "VR SDKs (Oculus, SteamVR)", "Physics Simulation", "Instructional Design"},
			Category:    "VR/AR Development",
			PostedBy: types.UserSummary{
				ID:     "clientSim1",
				Name:   "ConstructSim Solutions",
				Avatar: "https://randomuser.me/api/portraits/lego/1.jpg",
			},
			Location:      "Remote",
			PostedDate:    time.Date(2025, time.April, 20, 10, 0, 0, 0, time.UTC),
			Proposals:     0,
			Status:        types.JobStatusOpen,
			ProposalsData: []types.Proposal{},
		},
		{
			ID:          "simjob2",
			Title:       "Hardware Rig Setup for Driving Simulator",
			Description: "Need a hardware expert to assemble and configure a multi-monitor driving simulator rig with force feedback wheel and pedals. On-site work required.",
			Budget:      3000,
			Duration:    "1 week",
			Skills:      []string{"Hardware Integration", "Driving Simulation", "Force Feedback Systems", "Cable Management"},
			Category:    "Hardware Integration",
			PostedBy: types.UserSummary{
				ID:     "clientSim2",
				Name:   "Apex Racing Academy",
				Avatar: "https://randomuser.me/api/portraits/lego/2.jpg",
			},
			Location:      "Austin, TX",
			PostedDate:    time.Date(2025, time.April, 25, 14, 30, 0, 0, time.UTC),
			Proposals:     0,
			Status:        types.JobStatusOpen,
			ProposalsData: []types.Proposal{},
		},
		{
			ID:          "simjob3",
			Title:       "Scenario Design for Emergency Response Training",
			Description: "Looking for a scenario designer to create 5 detailed emergency response scenarios for our existing simulation software. Experience in crisis management training preferred.",
			Budget:      4500,
			Duration:    "6 weeks",
			Skills:      []string{"Scenario Design", "Instructional Design", "Crisis Management"},
			Category:    "Training Program Development",
			PostedBy: types.UserSummary{
				ID:     "clientSim3",
				Name:   "SafeGuard Training Inc.",
				Avatar: "https://randomuser.me/api/portraits/lego/3.jpg",
			},
			Location:      "Remote",
			PostedDate:    time.Date(2025, time.May, 1, 9, 15, 0, 0, time.UTC),
			Proposals:     0,
			Status:        types.JobStatusOpen,
			ProposalsData: []types.Proposal{},
		},
	}
}
