package seed

import "github.com/meghashyamc/advocates/models"

var specialties = []string{
	"Bipolar",
	"LGBTQ",
	"Medication/Prescribing",
	"Suicide History/Attempts",
	"General Mental Health (anxiety, depression, stress, grief, life transitions)",
	"Men's issues",
	"Relationship Issues (family, friends, couple, etc)",
	"Personal growth",
	"Chronic pain",
	"Weight loss & nutrition",
	"Eating disorders",
	"Diabetic Diet and nutrition",
	"Coaching (leadership, career, academic and wellness)",
	"Life coaching",
	"Obsessive-compulsive disorders",
	"Neuropsychological evaluations & testing (ADHD testing)",
	"Attention and Hyperactivity (ADHD)",
	"Sleep issues",
	"Schizophrenia and psychotic disorders",
	"Learning disorders",
	"Domestic abuse",
}

func pick(indexes ...int) []string {
	picked := make([]string, 0, len(indexes))
	for _, i := range indexes {
		picked = append(picked, specialties[i])
	}
	return picked
}

// Advocates returns a fresh copy of the seed record set. Callers may modify the returned slice freely.
func Advocates() []models.Advocate {
	advocates := []models.Advocate{
		{FirstName: "John", LastName: "Doe", City: "New York", Degree: "MD", Specialties: pick(0, 2, 4), YearsOfExperience: 10, PhoneNumber: 5551234567},
		{FirstName: "Jane", LastName: "Doe", City: "Springfield", Degree: "MD", Specialties: []string{"Anxiety", "Trauma"}, YearsOfExperience: 12, PhoneNumber: 5551234567},
		{FirstName: "Alice", LastName: "Johnson", City: "Los Angeles", Degree: "PhD", Specialties: pick(5, 6), YearsOfExperience: 8, PhoneNumber: 5559876543},
		{FirstName: "Michael", LastName: "Brown", City: "Chicago", Degree: "MSW", Specialties: pick(7, 8, 9), YearsOfExperience: 5, PhoneNumber: 5554567890},
		{FirstName: "Emily", LastName: "Davis", City: "Houston", Degree: "MD", Specialties: pick(10, 11), YearsOfExperience: 3, PhoneNumber: 5553216540},
		{FirstName: "Chris", LastName: "Martinez", City: "Phoenix", Degree: "PhD", Specialties: pick(12, 13), YearsOfExperience: 7, PhoneNumber: 5556543210},
		{FirstName: "Jessica", LastName: "Taylor", City: "Philadelphia", Degree: "MSW", Specialties: pick(14, 15), YearsOfExperience: 9, PhoneNumber: 5557890123},
		{FirstName: "David", LastName: "Harris", City: "San Antonio", Degree: "MD", Specialties: pick(16, 17), YearsOfExperience: 6, PhoneNumber: 5554561234},
		{FirstName: "Laura", LastName: "Clark", City: "San Diego", Degree: "PhD", Specialties: pick(18, 19), YearsOfExperience: 4, PhoneNumber: 5557896543},
		{FirstName: "Daniel", LastName: "Lewis", City: "Dallas", Degree: "MSW", Specialties: pick(20, 1), YearsOfExperience: 11, PhoneNumber: 5553214567},
		{FirstName: "Sarah", LastName: "Lee", City: "San Jose", Degree: "MD", Specialties: pick(3, 4, 7), YearsOfExperience: 2, PhoneNumber: 5551238765},
		{FirstName: "James", LastName: "King", City: "Austin", Degree: "PhD", Specialties: pick(6, 8), YearsOfExperience: 13, PhoneNumber: 5556789012},
		{FirstName: "Megan", LastName: "Green", City: "Jacksonville", Degree: "MSW", Specialties: pick(9, 10, 11), YearsOfExperience: 1, PhoneNumber: 5559012345},
		{FirstName: "Joshua", LastName: "Walker", City: "San Francisco", Degree: "MD", Specialties: pick(12, 16), YearsOfExperience: 5, PhoneNumber: 5553456789},
		{FirstName: "Amanda", LastName: "Hall", City: "Columbus", Degree: "PhD", Specialties: pick(13, 17, 18), YearsOfExperience: 14, PhoneNumber: 5556783456},
	}

	for i := range advocates {
		advocates[i].ID = models.Int64Ptr(int64(i + 1))
	}

	return advocates
}
