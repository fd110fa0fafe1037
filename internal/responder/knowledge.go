package responder

// knowledgeBase is the built-in cat dictionary. Order matters: earlier
// entries win score ties.
var knowledgeBase = []Entry{
	// Greetings
	{"hello", "Hello! I'm the TrustCat assistant. Ask me anything about cats - breeds, behavior, or fun facts!"},
	{"hi", "Hi there! Ready to answer your cat questions. Want to learn something fascinating about cats?"},
	{"help", "I can answer questions about cat behavior, health, breeds, and general facts. Try topics like \"colors\", \"hunting\", \"intelligence\", \"age\", or \"senses\"!"},

	// Emotions and personality
	{"happy", "Cats show happiness through purring, soft meows, relaxed posture, and slow blinking. Try slow blinking back at your cat - it's like a kitty kiss!"},
	{"sad", "Cats can feel sad or depressed. Signs include hiding, loss of appetite, or excessive sleeping. Always consult a vet if behavior changes suddenly."},
	{"angry", "An angry cat may swish their tail, flatten ears, or growl. Give them space and time to calm down."},
	{"personality", "Each cat has a unique personality! Some are outgoing, others shy. Environment and early experiences shape their character."},

	// Behavior
	{"hunting", "Cats are natural hunters: they can jump six times their length, run at 30mph, hear ultrasonic sounds, and see in a sixth of the light humans need."},
	{"intelligence", "Cats are highly intelligent! They understand 25-35 words, solve puzzles, remember solutions for years, and learn by observation."},
	{"communication", "Cats communicate through vocalizations (25+ sounds), body language, scent marking, and tail positions."},
	{"sleep", "Cats sleep 16-20 hours a day to conserve energy. This is normal feline behavior!"},
	{"purr", "Cats purr for many reasons - when happy, stressed, or even healing. The frequency (25-150Hz) can promote healing!"},
	{"meow", "Cats mainly meow to communicate with humans, not other cats. Each cat develops a unique \"language\" with their owner!"},
	{"scratch", "Scratching is natural behavior for cats - it marks territory, exercises muscles, and maintains claw health."},
	{"knead", "Kneading (making biscuits) is a behavior from kittenhood when nursing. It shows contentment and trust!"},

	// Anatomy
	{"whiskers", "Cat whiskers are as wide as their body - they're used to measure if spaces are wide enough to pass through!"},
	{"senses", "Cat senses are incredible: they see in a sixth of the light we need, hear ultrasonic sounds, and smell 14x better than humans."},
	{"eyes", "Cat eye colors can be gold, green, blue, copper, orange, or odd-eyed. The color develops as they grow!"},
	{"colors", "Cat coat colors include black (most adopted), white (often deaf if blue-eyed), orange (80% male), calico (99.9% female), and tabby (most common pattern)."},
	{"jump", "Cats can jump up to 6 times their length and usually land on their feet due to the \"righting reflex\"."},
	{"speed", "Cats can run at speeds up to 30 mph in short bursts."},

	// Life stages
	{"kitten", "Kitten development: eyes open at 0-2 weeks, walking by 3-4 weeks, social learning at 4-8 weeks, ready for adoption at 8-12 weeks."},
	{"senior", "Senior cats (7+ years) need more vet checks, may need a special diet, are often more affectionate, and sleep more."},
	{"age", "Adult cats (1-7 years) need 2-3 meals daily, sleep 16-20 hours, and should play several times a day."},

	// Health and care
	{"food", "Cats are obligate carnivores and need meat protein. Always provide fresh water and high-quality cat food."},
	{"diet", "Cats need high protein, taurine, fresh water, and small frequent meals. Never feed dog food to cats!"},
	{"water", "Cats need fresh water daily. Some prefer running water from fountains."},
	{"vet", "Regular vet check-ups are important! Cats should visit annually for vaccinations and health checks."},
	{"weight", "The average adult cat should weigh 8-10 pounds. Obesity can lead to health issues."},
	{"litter", "Keep litter boxes clean and provide one box per cat plus one extra, in quiet, accessible areas."},
	{"groom", "Regular grooming helps prevent hairballs and strengthens your bond with your cat."},
	{"sick", "Signs of illness include changes in appetite or thirst, lethargy, hiding, vomiting, or litter box changes. Contact a vet if they persist."},
	{"toxic", "Common toxins: lilies, chocolate, onions, garlic, cleaning products. Call a vet if ingested!"},
	{"indoor", "Indoor cats typically live longer, safer lives than outdoor cats."},

	// Breeds
	{"breed", "There are over 40 recognized cat breeds, each with unique characteristics!"},
	{"siamese", "Siamese cats are known for being vocal, intelligent, and social. They often bond strongly with one person."},
	{"persian", "Persian cats are gentle, quiet cats known for their long coat and flat face. They need regular grooming."},
	{"maine", "Maine Coons are large, gentle giants known as the \"dogs of the cat world\" for their friendly nature."},
	{"ragdoll", "Ragdolls are large, gentle cats known for going limp when held. They're great with families!"},

	// Training and social
	{"train", "Cats can be trained using positive reinforcement! Clicker training works well for many cats."},
	{"play", "Daily play sessions are important for exercise and mental stimulation. Use toys that mimic prey movement."},
	{"friend", "Cats can form strong bonds with humans and other pets. Early socialization is key!"},
	{"alone", "Most cats are fine alone for 8-12 hours but appreciate companionship. Consider two cats if you're away often."},
	{"love", "Cats show affection through purring, slow blinks, head bumps, and following you around."},

	// History and science
	{"history", "Cats were worshipped in Ancient Egypt, protected ships from rats, and changed farming by controlling pests."},
	{"memory", "Cats have excellent long-term memory and can remember people and experiences for years."},
	{"science", "Cats share 90% of their DNA with humans, can make 100 different sounds, and have unique nose prints like fingerprints."},
	{"night", "Cats can see in light six times dimmer than what humans need, thanks to special eye structures."},
}
