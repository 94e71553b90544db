// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package catalog

import "github.com/tomtom215/moodrec/internal/recommend"

// builtinItems is the bundled demonstration catalog: thirty movies followed
// by thirty books. IDs are assigned at load time.
var builtinItems = []recommend.MediaItem{
	// positive movies
	{
		Title:       "The Pursuit of Happyness",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Drama", "Biography"},
		Year:        2006,
		Rating:      8.0,
		Description: "A struggling salesman takes custody of his son as he's poised to begin a life-changing professional career.",
	},
	{
		Title:       "La La Land",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Musical", "Romance"},
		Year:        2016,
		Rating:      8.0,
		Description: "While navigating their careers in Los Angeles, a pianist and an actress fall in love while attempting to reconcile their aspirations for the future.",
	},
	{
		Title:       "Soul",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Animation", "Adventure"},
		Year:        2020,
		Rating:      8.1,
		Description: "A musician who has lost his passion for music is transported out of his body and must find his way back with the help of an infant soul learning about herself.",
	},
	{
		Title:       "Forrest Gump",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Drama", "Romance"},
		Year:        1994,
		Rating:      8.8,
		Description: "The presidencies of Kennedy and Johnson, the Vietnam War, the Watergate scandal and other historical events unfold from the perspective of an Alabama man with an IQ of 75.",
	},
	{
		Title:       "Toy Story",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Animation", "Adventure"},
		Year:        1995,
		Rating:      8.3,
		Description: "A cowboy doll is profoundly threatened and jealous when a new spaceman figure supplants him as top toy in a boy's room.",
	},
	{
		Title:       "Inside Out",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Animation", "Adventure"},
		Year:        2015,
		Rating:      8.1,
		Description: "After young Riley is uprooted from her Midwest life and moved to San Francisco, her emotions - Joy, Fear, Anger, Disgust and Sadness - conflict on how best to navigate a new city, house, and school.",
	},
	{
		Title:       "CODA",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Drama", "Music"},
		Year:        2021,
		Rating:      8.0,
		Description: "As a CODA (Child of Deaf Adults), Ruby is the only hearing person in her deaf family. When the family's fishing business is threatened, Ruby finds herself torn between pursuing her love of music and her fear of abandoning her parents.",
	},
	{
		Title:       "Love Actually",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Comedy", "Drama"},
		Year:        2003,
		Rating:      7.6,
		Description: "Follows the lives of eight very different couples in dealing with their love lives in various loosely interrelated tales all set during a frantic month before Christmas in London, England.",
	},
	{
		Title:       "The Intouchables",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Biography", "Comedy"},
		Year:        2011,
		Rating:      8.5,
		Description: "After he becomes a quadriplegic from a paragliding accident, an aristocrat hires a young man from the projects to be his caregiver.",
	},
	{
		Title:       "Up",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Animation", "Adventure"},
		Year:        2009,
		Rating:      8.2,
		Description: "78-year-old Carl Fredricksen travels to Paradise Falls in his house equipped with balloons, inadvertently taking a young stowaway.",
	},
	// neutral movies
	{
		Title:       "Inception",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Action", "Adventure"},
		Year:        2010,
		Rating:      8.8,
		Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
	},
	{
		Title:       "The Social Network",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Biography", "Drama"},
		Year:        2010,
		Rating:      7.7,
		Description: "As Harvard student Mark Zuckerberg creates the social networking site that would become known as Facebook, he is sued by the twins who claimed he stole their idea, and by the co-founder who was later squeezed out of the business.",
	},
	{
		Title:       "The Martian",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Adventure", "Drama"},
		Year:        2015,
		Rating:      8.0,
		Description: "An astronaut becomes stranded on Mars after his team assume him dead, and must rely on his ingenuity to find a way to signal to Earth that he is alive.",
	},
	{
		Title:       "The Matrix",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Action", "Sci-Fi"},
		Year:        1999,
		Rating:      8.7,
		Description: "When a beautiful stranger leads computer hacker Neo to a forbidding underworld, he discovers the shocking truth--the life he knows is the elaborate deception of an evil cyber-intelligence.",
	},
	{
		Title:       "Avatar",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Action", "Adventure"},
		Year:        2009,
		Rating:      7.8,
		Description: "A paraplegic Marine dispatched to the moon Pandora on a unique mission becomes torn between following his orders and protecting the world he feels is his home.",
	},
	{
		Title:       "Dune",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Action", "Adventure"},
		Year:        2021,
		Rating:      8.0,
		Description: "Feature adaptation of Frank Herbert's science fiction novel about the son of a noble family entrusted with the protection of the most valuable asset and most vital element in the galaxy.",
	},
	{
		Title:       "Casino Royale",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Action", "Adventure"},
		Year:        2006,
		Rating:      8.0,
		Description: "After earning 00 status and a licence to kill, Secret Agent James Bond sets out on his first mission as 007. Bond must defeat a private banker funding terrorists in a high-stakes game of poker at Casino Royale, Montenegro.",
	},
	{
		Title:       "Interstellar",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Adventure", "Drama"},
		Year:        2014,
		Rating:      8.6,
		Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
	},
	{
		Title:       "The Prestige",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Drama", "Mystery"},
		Year:        2006,
		Rating:      8.5,
		Description: "After a tragic accident, two stage magicians engage in a battle to create the ultimate illusion while sacrificing everything they have to outwit each other.",
	},
	{
		Title:       "Memento",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Mystery", "Thriller"},
		Year:        2000,
		Rating:      8.4,
		Description: "A man with short-term memory loss attempts to track down his wife's murderer.",
	},
	// negative movies
	{
		Title:       "Joker",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Crime", "Drama"},
		Year:        2019,
		Rating:      8.4,
		Description: "In Gotham City, mentally troubled comedian Arthur Fleck is disregarded and mistreated by society. He then embarks on a downward spiral of revolution and bloody crime. This path brings him face-to-face with his alter-ego: the Joker.",
	},
	{
		Title:       "The Lighthouse",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Drama", "Fantasy"},
		Year:        2019,
		Rating:      7.5,
		Description: "Two lighthouse keepers try to maintain their sanity while living on a remote and mysterious New England island in the 1890s.",
	},
	{
		Title:       "Requiem for a Dream",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Drama"},
		Year:        2000,
		Rating:      8.3,
		Description: "The drug-induced utopias of four Coney Island people are shattered when their addictions run deep.",
	},
	{
		Title:       "Black Swan",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Drama", "Thriller"},
		Year:        2010,
		Rating:      8.0,
		Description: "A committed dancer struggles to maintain her sanity after winning the lead role in a production of Tchaikovsky's 'Swan Lake'.",
	},
	{
		Title:       "No Country for Old Men",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Crime", "Drama"},
		Year:        2007,
		Rating:      8.1,
		Description: "Violence and mayhem ensue after a hunter stumbles upon a drug deal gone wrong and more than two million dollars in cash near the Rio Grande.",
	},
	{
		Title:       "Hereditary",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Drama", "Horror"},
		Year:        2018,
		Rating:      7.3,
		Description: "A grieving family is haunted by tragic and disturbing occurrences after the death of their secretive grandmother.",
	},
	{
		Title:       "Uncut Gems",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Crime", "Drama"},
		Year:        2019,
		Rating:      7.4,
		Description: "With his debts mounting and angry collectors closing in, a fast-talking New York City jeweler risks everything in hope of staying afloat and alive.",
	},
	{
		Title:       "The Revenant",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Action", "Adventure"},
		Year:        2015,
		Rating:      8.0,
		Description: "A frontiersman on a fur trading expedition in the 1820s fights for survival after being mauled by a bear and left for dead by members of his own hunting team.",
	},
	{
		Title:       "Se7en",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Crime", "Drama"},
		Year:        1995,
		Rating:      8.6,
		Description: "Two detectives, a rookie and a veteran, hunt a serial killer who uses the seven deadly sins as his motives.",
	},
	{
		Title:       "The Silence of the Lambs",
		Kind:        recommend.KindMovie,
		Genres:      []string{"Crime", "Drama"},
		Year:        1991,
		Rating:      8.6,
		Description: "A young F.B.I. cadet must receive the help of an incarcerated and manipulative cannibal killer to help catch another serial killer, a madman who skins his victims.",
	},
	// positive books
	{
		Title:       "The Alchemist",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Adventure"},
		Creator:     "Paulo Coelho",
		Year:        1988,
		Description: "A story about following your dreams and listening to your heart.",
	},
	{
		Title:       "Atomic Habits",
		Kind:        recommend.KindBook,
		Genres:      []string{"Self-Help", "Productivity"},
		Creator:     "James Clear",
		Year:        2018,
		Description: "Tiny Changes, Remarkable Results: An Easy & Proven Way to Build Good Habits & Break Bad Ones.",
	},
	{
		Title:       "The Power of Positive Thinking",
		Kind:        recommend.KindBook,
		Genres:      []string{"Self-Help"},
		Creator:     "Norman Vincent Peale",
		Year:        1952,
		Description: "A practical guide to mastering the problems of everyday living.",
	},
	{
		Title:       "Man's Search for Meaning",
		Kind:        recommend.KindBook,
		Genres:      []string{"Psychology", "Memoir"},
		Creator:     "Viktor E. Frankl",
		Year:        1946,
		Description: "Psychiatrist Viktor Frankl's memoir has riveted generations with its descriptions of life in Nazi death camps and its lessons for spiritual survival.",
	},
	{
		Title:       "The Book of Joy",
		Kind:        recommend.KindBook,
		Genres:      []string{"Spirituality"},
		Creator:     "Dalai Lama and Desmond Tutu",
		Year:        2016,
		Description: "Lasting Happiness in a Changing World.",
	},
	{
		Title:       "A Man Called Ove",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Humor"},
		Creator:     "Fredrik Backman",
		Year:        2012,
		Description: "A grumpy yet loveable man finds his solitary world turned on its head when a boisterous young family moves in next door.",
	},
	{
		Title:       "Where the Crawdads Sing",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Coming of Age"},
		Creator:     "Delia Owens",
		Year:        2018,
		Description: "For years, rumors of the 'Marsh Girl' have haunted Barkley Cove, a quiet town on the North Carolina coast.",
	},
	{
		Title:       "The Happiness Project",
		Kind:        recommend.KindBook,
		Genres:      []string{"Self-Help", "Memoir"},
		Creator:     "Gretchen Rubin",
		Year:        2009,
		Description: "Or, Why I Spent a Year Trying to Sing in the Morning, Clean My Closets, Fight Right, Read Aristotle, and Generally Have More Fun.",
	},
	{
		Title:       "Little Women",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Classic"},
		Creator:     "Louisa May Alcott",
		Year:        1868,
		Description: "The story of the lives of the four March sisters—Meg, Jo, Beth, and Amy—detailing their passage from childhood to womanhood.",
	},
	{
		Title:       "Anne of Green Gables",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Children's"},
		Creator:     "L.M. Montgomery",
		Year:        1908,
		Description: "The adventures of an 11-year-old orphan girl who lives on Prince Edward Island.",
	},
	// neutral books
	{
		Title:       "Sapiens: A Brief History of Humankind",
		Kind:        recommend.KindBook,
		Genres:      []string{"History", "Science"},
		Creator:     "Yuval Noah Harari",
		Year:        2011,
		Description: "A brief history of humankind from the Stone Age up to the twenty-first century.",
	},
	{
		Title:       "Thinking, Fast and Slow",
		Kind:        recommend.KindBook,
		Genres:      []string{"Psychology", "Economics"},
		Creator:     "Daniel Kahneman",
		Year:        2011,
		Description: "How the human mind works, and how we make decisions.",
	},
	{
		Title:       "Educated",
		Kind:        recommend.KindBook,
		Genres:      []string{"Memoir", "Biography"},
		Creator:     "Tara Westover",
		Year:        2018,
		Description: "A memoir about a young girl who, kept out of school, leaves her survivalist family and goes on to earn a PhD from Cambridge University.",
	},
	{
		Title:       "The Silent Patient",
		Kind:        recommend.KindBook,
		Genres:      []string{"Mystery", "Thriller"},
		Creator:     "Alex Michaelides",
		Year:        2019,
		Description: "A psychological thriller about a woman's act of violence against her husband―and of the therapist obsessed with uncovering her motive.",
	},
	{
		Title:       "1984",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Dystopian"},
		Creator:     "George Orwell",
		Year:        1949,
		Description: "A dystopian social science fiction novel set in a world of perpetual war, omnipresent government surveillance, and public manipulation.",
	},
	{
		Title:       "The Great Gatsby",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Classic"},
		Creator:     "F. Scott Fitzgerald",
		Year:        1925,
		Description: "A portrait of the Jazz Age in all of its decadence and excess.",
	},
	{
		Title:       "To Kill a Mockingbird",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Classic"},
		Creator:     "Harper Lee",
		Year:        1960,
		Description: "A novel about the childhood of Scout Finch in a Southern town and her father's battle for justice.",
	},
	{
		Title:       "The Catcher in the Rye",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Coming of Age"},
		Creator:     "J.D. Salinger",
		Year:        1951,
		Description: "The story of a teenaged boy dealing with alienation.",
	},
	{
		Title:       "Pride and Prejudice",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Romance"},
		Creator:     "Jane Austen",
		Year:        1813,
		Description: "A romantic novel of manners that follows the character development of Elizabeth Bennet.",
	},
	{
		Title:       "The Hobbit",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Fantasy"},
		Creator:     "J.R.R. Tolkien",
		Year:        1937,
		Description: "A fantasy novel about the adventures of hobbit Bilbo Baggins.",
	},
	// negative books
	{
		Title:       "The Road",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Post-Apocalyptic"},
		Creator:     "Cormac McCarthy",
		Year:        2006,
		Description: "A journey of a father and his son walking alone through burned America, heading through the ravaged landscape to the coast.",
	},
	{
		Title:       "Crime and Punishment",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Psychological"},
		Creator:     "Fyodor Dostoevsky",
		Year:        1866,
		Description: "The story of the mental anguish and moral dilemmas of Rodion Raskolnikov, an impoverished ex-student in Saint Petersburg who formulates a plan to kill an unscrupulous pawnbroker.",
	},
	{
		Title:       "The Bell Jar",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Autobiographical"},
		Creator:     "Sylvia Plath",
		Year:        1963,
		Description: "Chronicles a young woman's descent into mental illness.",
	},
	{
		Title:       "No Longer Human",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Psychological"},
		Creator:     "Osamu Dazai",
		Year:        1948,
		Description: "The poignant and fascinating story of a young man who is caught between the breakup of the traditions of a northern Japanese aristocratic family and the impact of Western ideas.",
	},
	{
		Title:       "The Metamorphosis",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Absurdist"},
		Creator:     "Franz Kafka",
		Year:        1915,
		Description: "A novella about a man who wakes up one morning to find himself transformed into a huge insect.",
	},
	{
		Title:       "Brave New World",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Dystopian"},
		Creator:     "Aldous Huxley",
		Year:        1932,
		Description: "A dystopian novel set in a futuristic World State of genetically modified citizens and an intelligence-based social hierarchy.",
	},
	{
		Title:       "The Stranger",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Philosophical"},
		Creator:     "Albert Camus",
		Year:        1942,
		Description: "Through the story of an ordinary man unwittingly drawn into a senseless murder on an Algerian beach, Camus explored what he termed 'the nakedness of man faced with the absurd.'",
	},
	{
		Title:       "Lord of the Flies",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Allegorical"},
		Creator:     "William Golding",
		Year:        1954,
		Description: "A group of British boys stuck on an uninhabited island who try to govern themselves with disastrous results.",
	},
	{
		Title:       "A Clockwork Orange",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Dystopian"},
		Creator:     "Anthony Burgess",
		Year:        1962,
		Description: "A frightening fable about good and evil, and the meaning of human freedom.",
	},
	{
		Title:       "Pet Sematary",
		Kind:        recommend.KindBook,
		Genres:      []string{"Fiction", "Horror"},
		Creator:     "Stephen King",
		Year:        1983,
		Description: "When Dr. Louis Creed takes a new job and moves his family to the idyllic rural town of Ludlow, Maine, this new beginning seems too good to be true.",
	},
}
