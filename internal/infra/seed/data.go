package seed

import (
	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"
)

// Default is the demo data set used by `migrate seed`.
var Default = Data{
	Accounts: []Account{
		{Email: "admin@swasthalink.in", FirstName: "Site", LastName: "Admin", Role: user.RoleAdmin},
		{Email: "patient@swasthalink.in", FirstName: "Gurpreet", LastName: "Kaur", Role: user.RolePatient},
	},
	Doctors: []DoctorSeed{
		{
			Account:        Account{Email: "dr.sharma@swasthalink.in", FirstName: "Anil", LastName: "Sharma"},
			Specialization: "General Physician",
			Experience:     12,
			Languages:      []string{"Hindi", "Punjabi", "English"},
		},
		{
			Account:        Account{Email: "dr.gill@swasthalink.in", FirstName: "Harleen", LastName: "Gill"},
			Specialization: "Pediatrician",
			Experience:     8,
			Languages:      []string{"Punjabi", "English"},
		},
		{
			Account:        Account{Email: "dr.verma@swasthalink.in", FirstName: "Rohit", LastName: "Verma"},
			Specialization: "Dermatologist",
			Experience:     5,
		},
	},
	Pharmacies: []PharmacySeed{
		{
			PharmacyInput: shared.PharmacyInput{Name: "Nabha Medical Store", Village: "Nabha", Address: "Main Bazaar, Nabha", Phone: "+91-1765-220011"},
			Stock:         map[string]int32{"Paracetamol 500mg": 120, "ORS Sachet": 40, "Amoxicillin 250mg": 0},
		},
		{
			PharmacyInput: shared.PharmacyInput{Name: "Jan Aushadhi Kendra", Village: "Bhadson", Address: "Near Bus Stand, Bhadson", Phone: "+91-1765-230045"},
			Stock:         map[string]int32{"Paracetamol 650mg": 60, "Cetirizine 10mg": 25, "Metformin 500mg": 80},
		},
	},
}
