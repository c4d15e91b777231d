package discovery

// defaultSeedTerms is the built-in pool of seed terms used when a caller
// supplies none and when the orchestrator re-rolls between fetch rounds.
// Common first names hit broadly across the upstream search index.
var defaultSeedTerms = []string{
	"Liam", "Noah", "Oliver", "James", "Elijah", "Mateo", "Theodore",
	"Henry", "Lucas", "William", "Benjamin", "Levi", "Sebastian", "Jack",
	"Ezra", "Michael", "Daniel", "Leo", "Owen", "Samuel", "Hudson",
	"Alexander", "Asher", "Luca", "Ethan", "John", "David", "Jackson",
	"Joseph", "Mason", "Luke", "Matthew", "Julian", "Dylan", "Elias",
	"Jacob", "Maverick", "Gabriel", "Logan", "Aiden", "Thomas", "Isaac",
	"Miles", "Grayson", "Santiago", "Anthony", "Wyatt", "Carter", "Jayden",
	"Ezekiel", "Caleb", "Cooper", "Josiah", "Charles", "Christopher",
	"Isaiah", "Nolan", "Cameron", "Nathan", "Joshua", "Kai", "Waylon",
	"Angel", "Lincoln", "Andrew", "Roman", "Adrian", "Aaron", "Wesley",
	"Ian", "Thiago", "Axel", "Brooks", "Bennett", "Weston", "Rowan",
	"Christian", "Theo", "Beau", "Eli", "Silas", "Jonathan", "Ryan",
	"Leonardo", "Walker", "Jaxon", "Micah", "Everett", "Robert", "Enzo",
	"Parker", "Jeremiah", "Jose", "Colton", "Luka", "Easton", "Landon",
	"Jordan", "Amir", "Gael", "Austin", "Adam", "Jameson", "August",
	"Xavier", "Myles", "Dominic", "Damian", "Nicholas", "Jace", "Carson",
	"Atlas", "Adriel", "Kayden", "Hunter", "River", "Greyson", "Emmett",
	"Harrison", "Vincent", "Milo", "Jasper", "Giovanni", "Jonah", "Zion",
	"Connor", "Sawyer", "Arthur", "Ryder", "Archer", "Lorenzo", "Declan",
	"Olivia", "Emma", "Charlotte", "Amelia", "Sophia", "Mia", "Isabella",
	"Ava", "Evelyn", "Luna", "Harper", "Sofia", "Camila", "Eleanor",
	"Elizabeth", "Violet", "Scarlett", "Emily", "Hazel", "Lily", "Gianna",
	"Aurora", "Penelope", "Aria", "Nora", "Chloe", "Ellie", "Mila",
	"Avery", "Layla", "Abigail", "Ella", "Isla", "Eliana", "Nova",
	"Madison", "Zoe", "Ivy", "Grace", "Lucy", "Willow", "Emilia", "Riley",
	"Naomi", "Victoria", "Stella", "Elena", "Hannah", "Valentina", "Maya",
	"Zoey", "Delilah", "Leah", "Lainey", "Lillian", "Paisley", "Genesis",
	"Madelyn", "Sadie", "Sophie", "Leilani", "Addison", "Natalie",
	"Josephine", "Alice", "Ruby", "Claire", "Kinsley", "Everly", "Emery",
	"Adeline", "Kennedy", "Maeve", "Audrey", "Autumn", "Athena", "Eden",
	"Iris", "Anna", "Eloise", "Jade", "Maria", "Caroline", "Brooklyn",
	"Quinn", "Aaliyah", "Vivian", "Liliana", "Gabriella", "Hailey",
	"Sarah", "Savannah", "Cora", "Madeline", "Natalia", "Ariana", "Lydia",
	"Lyla", "Clara", "Allison", "Aubrey", "Millie", "Melody", "Ayla",
	"Serenity", "Bella", "Skylar", "Josie", "Lucia", "Daisy", "Raelynn",
	"Eva", "Juniper", "Samantha", "Elliana", "Eliza", "Rylee", "Nevaeh",
	"Hadley", "Alaia", "Julia", "Amara", "Rose", "Charlie", "Ashley",
	"Remi", "Georgia", "Adalynn", "Melanie", "Amira", "Margaret", "Piper",
}
