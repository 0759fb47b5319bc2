package seed

import (
	"time"

	"github.com/simhub/apiserver/types"
)

// HardwareCategories is the catalog of hardware listing categories.
var HardwareCategories = []string{
	"Flight Simulator Rigs",
	"Driving Simulator Cockpits",
	"VR Motion Platforms",
	"Haptic Feedback Systems",
	"Motion Capture Systems",
	"Large-Scale Display Solutions",
	"Custom Control Panels",
	"Eye Tracking Hardware",
	"Biometric Sensors for Simulation",
}

// HardwareFeatures is the catalog of feature tags for hardware listings.
var HardwareFeatures = []string{
	"Full Motion (6DOF, 3DOF)", "Direct Drive Wheel Support", "Triple Monitor Mount", "VR Ready",
	"Tactile Transducers", "Buttkicker Integration", "Modular Design", "Industrial Grade Components",
	"Plug-and-Play Setup", "Wireless Connectivity", "High Refresh Rate Displays", "Force Feedback Joysticks/Yokes",
}

// Hardware returns the sample hardware dataset used to bootstrap an empty
// store.
func Hardware() []types.Hardware {
	return []types.Hardware{
		{
			ID:          "hw1",
			Name:        "ProSim 6DOF Motion Platform",
			Description: "A professional-grade 6 Degrees of Freedom motion platform suitable for advanced flight and driving simulations. Includes software development kit for integration.",
			Category:    "VR Motion Platforms",
			Price:       15000,
			RentalTerms: "Monthly Rental or Purchase",
			Condition:   "Used - Like New",
			Location:    "Los Angeles, CA",
			Features:    []string{"Full Motion (6DOF)", "VR Ready", "Industrial Grade Components", "Modular Design"},
			Specifications: []types.Specification{
				{Name: "Payload Capacity", Value: "250kg"},
				{Name: "Actuator Stroke", Value: "150mm"},
				{Name: "Connectivity", Value: "USB 3.0, Ethernet"},
			},
			Owner: types.UserSummary{
				ID:     "hwOwner1",
				Name:   "SimGear Rentals",
				Avatar: "https://randomuser.me/api/portraits/lego/7.jpg",
			},
			PostedDate:   time.Date(2025, time.February, 20, 9, 0, 0, 0, time.UTC),
			Rating:       4.7,
			Reviews:      8,
			Availability: "Available for immediate rental/purchase",
			UserReviews:  []types.Review{},
		},
		{
			ID:          "hw2",
			Name:        "Advanced Haptic Feedback Gloves (Pair)",
			Description: "Experience realistic touch and interaction in VR simulations with these advanced haptic gloves. Per-finger force feedback and vibrotactile sensations.",
			Category:    "Haptic Feedback Systems",
			Price:       250,
			RentalTerms: "Weekly Rental",
			Condition:   "New",
			Location:    "Remote Shipping Available",
			Features:    []string{"Per-Finger Force Feedback", "Vibrotactile Sensations", "Wireless Connectivity", "VR Ready"},
			Specifications: []types.Specification{
				{Name: "Battery Life", Value: "4 hours"},
				{Name: "Tracking Compatibility", Value: "SteamVR, Oculus Link"},
				{Name: "SDKs", Value: "Unity, Unreal Engine"},
			},
			Owner: types.UserSummary{
				ID:     "hwOwner2",
				Name:   "TactileTech Innovations",
				Avatar: "https://randomuser.me/api/portraits/lego/8.jpg",
			},
			PostedDate:   time.Date(2025, time.April, 1, 13, 45, 0, 0, time.UTC),
			Rating:       4.9,
			Reviews:      12,
			Availability: "Limited stock, inquire for dates",
			UserReviews:  []types.Review{},
		},
	}
}
