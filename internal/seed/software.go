package seed

import (
	"time"

	"github.com/simhub/apiserver/types"
)

// SoftwareCategories is the catalog of software listing categories.
var SoftwareCategories = []string{
	"Flight Simulation",
	"Driving Simulation",
	"Medical Simulation",
	"Industrial Training",
	"Physics Engines",
	"AI Authoring Tools",
	"VR/AR Platforms",
	"3D Modeling & Animation Suites",
	"Scenario Generation Tools",
	"Data Analytics for Simulation",
}

// SoftwareFeatures is the catalog of feature tags for software listings.
var SoftwareFeatures = []string{
	"Real-time Rendering", "Multi-user Support", "Haptic Feedback Compatibility", "Performance Analytics",
	"Customizable Scenarios", "Cross-Platform (Windows, Linux, Mac)", "VR Headset Support (Oculus, Vive, etc.)",
	"AR Overlay Capabilities", "Physics-Based Modeling", "AI Behavior Trees", "API for Integration", "Cloud Deployment",
}

// Software returns the sample software dataset used to bootstrap an empty
// store.
func Software() []types.Software {
	return []types.Software{
		{
			ID:          "sw1",
			Name:        "AeroSim Pro X",
			Description: "Professional flight simulation software with a wide range of aircraft models and realistic weather systems. Ideal for pilot training and aerospace research.",
			Category:    "Flight Simulation",
			Price:       2999,
			Licensing:   "Per Seat Annual Subscription",
			Features:    []string{"Real-time Rendering", "Multi-user Support", "VR Headset Support (Oculus, Vive, etc.)", "Customizable Scenarios", "Performance Analytics"},
			Compatibility: []types.Compatibility{
				{System: "Windows", Details: "Windows 10/11, DirectX 12, 16GB RAM, Nvidia RTX 2070+"},
				{System: "VR Headsets", Details: "Oculus Rift S, HTC Vive Pro, Valve Index"},
			},
			Owner: types.UserSummary{
				ID:     "devCo1",
				Name:   "Aviation Dynamics Ltd.",
				Avatar: "https://randomuser.me/api/portraits/lego/5.jpg",
			},
			PostedDate: time.Date(2025, time.March, 10, 11, 0, 0, 0, time.UTC),
			Rating:     4.8,
			Reviews:    15,
			UserReviews: []types.Review{
				{UserName: "PilotPete", Rating: 5, Date: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), Comment: "Incredibly realistic flight model!"},
				{UserName: "FlightSchool101", Rating: 4, Date: time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), Comment: "Great for our student pilots, though a bit pricey."},
			},
		},
		{
			ID:          "sw2",
			Name:        "MediTrain VR Suite",
			Description: "A comprehensive VR platform for medical training, offering modules for surgical procedures, patient interaction, and emergency response.",
			Category:    "Medical Simulation",
			Price:       0, // contact for price
			Licensing:   "Custom Enterprise Licensing",
			Features:    []string{"Haptic Feedback Compatibility", "Performance Analytics", "Customizable Scenarios", "Multi-user Support", "VR Headset Support (Oculus, Vive, etc.)"},
			Compatibility: []types.Compatibility{
				{System: "Windows", Details: "Windows 10 Pro, 32GB RAM, Nvidia RTX 3080+"},
				{System: "Haptics", Details: "Supports SenseGlove, HaptX"},
			},
			Owner: types.UserSummary{
				ID:     "healthSimDevs",
				Name:   "BioDigital Simulations",
				Avatar: "https://randomuser.me/api/portraits/lego/6.jpg",
			},
			PostedDate:  time.Date(2025, time.April, 15, 16, 30, 0, 0, time.UTC),
			Rating:      4.9,
			Reviews:     22,
			UserReviews: []types.Review{},
		},
	}
}
