// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package sample

// detailed are reference films with complete OMDb payloads.
var detailed = []map[string]string{
	{
		"title":            "The Shawshank Redemption",
		"release_date":     "1994",
		"omdb_rated":       "R",
		"omdb_released":    "14 Oct 1994",
		"omdb_runtime":     "142 min",
		"omdb_genre":       "Drama",
		"omdb_director":    "Frank Darabont",
		"omdb_writer":      "Stephen King, Frank Darabont",
		"omdb_actors":      "Tim Robbins, Morgan Freeman, Bob Gunton",
		"omdb_plot":        "Chronicles the experiences of a formerly successful banker as a prisoner in the gloomy jailhouse of Shawshank after being found guilty of a crime he did not commit.",
		"omdb_language":    "English",
		"omdb_country":     "United States",
		"omdb_awards":      "Nominated for 7 Oscars. 21 wins & 42 nominations total",
		"omdb_poster":      "https://m.media-amazon.com/images/M/MV5BMDAyY2FhYjctNDc5OS00MDNlLThiMGUtY2UxYWVkNGY2ZjljXkEyXkFqcGc@._V1_SX300.jpg",
		"omdb_metascore":   "82",
		"omdb_imdb_rating": "9.3",
		"omdb_imdb_votes":  "3,059,994",
		"omdb_imdb_id":     "tt0111161",
		"omdb_box_office":  "$28,767,189",
	},
	{
		"title":            "The Godfather",
		"release_date":     "1972",
		"omdb_rated":       "R",
		"omdb_released":    "24 Mar 1972",
		"omdb_runtime":     "175 min",
		"omdb_genre":       "Crime, Drama",
		"omdb_director":    "Francis Ford Coppola",
		"omdb_writer":      "Mario Puzo, Francis Ford Coppola",
		"omdb_actors":      "Marlon Brando, Al Pacino, James Caan",
		"omdb_plot":        "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
		"omdb_language":    "English, Italian, Latin",
		"omdb_country":     "United States",
		"omdb_awards":      "Won 3 Oscars. 31 wins & 31 nominations total",
		"omdb_poster":      "https://m.media-amazon.com/images/M/MV5BNGEwYjgwOGQtYjg5ZS00Njc1LTk2ZGEtM2QwZWQ2NjdhZTE5XkEyXkFqcGc@._V1_SX300.jpg",
		"omdb_metascore":   "100",
		"omdb_imdb_rating": "9.2",
		"omdb_imdb_votes":  "2,132,118",
		"omdb_imdb_id":     "tt0068646",
		"omdb_box_office":  "$136,381,073",
	},
	{
		"title":            "The Dark Knight",
		"release_date":     "2008",
		"omdb_rated":       "PG-13",
		"omdb_released":    "18 Jul 2008",
		"omdb_runtime":     "152 min",
		"omdb_genre":       "Action, Crime, Drama",
		"omdb_director":    "Christopher Nolan",
		"omdb_writer":      "Jonathan Nolan, Christopher Nolan, David S. Goyer",
		"omdb_actors":      "Christian Bale, Heath Ledger, Aaron Eckhart",
		"omdb_plot":        "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		"omdb_language":    "English, Mandarin",
		"omdb_country":     "United States, United Kingdom",
		"omdb_awards":      "Won 2 Oscars. 164 wins & 165 nominations total",
		"omdb_poster":      "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_SX300.jpg",
		"omdb_metascore":   "84",
		"omdb_imdb_rating": "9.0",
		"omdb_imdb_votes":  "3,029,887",
		"omdb_imdb_id":     "tt0468569",
		"omdb_box_office":  "$534,987,076",
	},
}

// film is a compact reference entry; the remaining OMDb fields are derived.
type film struct {
	title    string
	year     string
	genre    string
	director string
	rating   string
	actors   string
}

var compact = []film{
	{"Pulp Fiction", "1994", "Crime, Drama", "Quentin Tarantino", "8.8", "John Travolta, Uma Thurman, Samuel L. Jackson"},
	{"Inception", "2010", "Action, Adventure, Sci-Fi", "Christopher Nolan", "8.8", "Leonardo DiCaprio, Joseph Gordon-Levitt, Elliot Page"},
	{"Fight Club", "1999", "Crime, Drama, Thriller", "David Fincher", "8.8", "Brad Pitt, Edward Norton, Meat Loaf"},
	{"Forrest Gump", "1994", "Drama, Romance", "Robert Zemeckis", "8.8", "Tom Hanks, Robin Wright, Gary Sinise"},
	{"The Matrix", "1999", "Action, Sci-Fi", "Lana Wachowski, Lilly Wachowski", "8.7", "Keanu Reeves, Laurence Fishburne, Carrie-Anne Moss"},
	{"Goodfellas", "1990", "Biography, Crime, Drama", "Martin Scorsese", "8.7", "Robert De Niro, Ray Liotta, Joe Pesci"},
	{"One Flew Over the Cuckoo's Nest", "1975", "Drama", "Milos Forman", "8.7", "Jack Nicholson, Louise Fletcher, Michael Berryman"},
	{"Se7en", "1995", "Crime, Drama, Mystery", "David Fincher", "8.6", "Morgan Freeman, Brad Pitt, Kevin Spacey"},
	{"Seven Samurai", "1954", "Action, Drama", "Akira Kurosawa", "8.6", "Toshirô Mifune, Takashi Shimura, Keiko Tsushima"},
	{"The Silence of the Lambs", "1991", "Crime, Drama, Thriller", "Jonathan Demme", "8.6", "Jodie Foster, Anthony Hopkins, Scott Glenn"},

	{"Terminator 2: Judgment Day", "1991", "Action, Sci-Fi", "James Cameron", "8.6", "Arnold Schwarzenegger, Linda Hamilton, Edward Furlong"},
	{"Back to the Future", "1985", "Adventure, Comedy, Sci-Fi", "Robert Zemeckis", "8.5", "Michael J. Fox, Christopher Lloyd, Lea Thompson"},
	{"Aliens", "1986", "Action, Adventure, Sci-Fi", "James Cameron", "8.4", "Sigourney Weaver, Michael Biehn, Carrie Henn"},
	{"Die Hard", "1988", "Action, Thriller", "John McTiernan", "8.2", "Bruce Willis, Alan Rickman, Bonnie Bedelia"},
	{"Raiders of the Lost Ark", "1981", "Action, Adventure", "Steven Spielberg", "8.4", "Harrison Ford, Karen Allen, Paul Freeman"},

	{"2001: A Space Odyssey", "1968", "Adventure, Sci-Fi", "Stanley Kubrick", "8.3", "Keir Dullea, Gary Lockwood, William Sylvester"},
	{"Blade Runner", "1982", "Action, Drama, Sci-Fi", "Ridley Scott", "8.1", "Harrison Ford, Rutger Hauer, Sean Young"},
	{"Star Wars", "1977", "Action, Adventure, Fantasy", "George Lucas", "8.6", "Mark Hamill, Harrison Ford, Carrie Fisher"},
	{"E.T. the Extra-Terrestrial", "1982", "Adventure, Family, Sci-Fi", "Steven Spielberg", "7.9", "Henry Thomas, Drew Barrymore, Peter Coyote"},
	{"Interstellar", "2014", "Adventure, Drama, Sci-Fi", "Christopher Nolan", "8.7", "Matthew McConaughey, Anne Hathaway, Jessica Chastain"},

	{"The Grand Budapest Hotel", "2014", "Adventure, Comedy, Crime", "Wes Anderson", "8.1", "Ralph Fiennes, F. Murray Abraham, Mathieu Amalric"},
	{"Some Like It Hot", "1959", "Comedy, Music, Romance", "Billy Wilder", "8.2", "Marilyn Monroe, Tony Curtis, Jack Lemmon"},
	{"Toy Story", "1995", "Animation, Adventure, Comedy", "John Lasseter", "8.3", "Tom Hanks, Tim Allen, Don Rickles"},
	{"The Big Lebowski", "1998", "Comedy, Crime", "Joel Coen, Ethan Coen", "8.1", "Jeff Bridges, John Goodman, Julianne Moore"},
	{"Groundhog Day", "1993", "Comedy, Drama, Fantasy", "Harold Ramis", "8.1", "Bill Murray, Andie MacDowell, Chris Elliott"},

	{"The Exorcist", "1973", "Horror", "William Friedkin", "8.1", "Ellen Burstyn, Max von Sydow, Linda Blair"},
	{"Psycho", "1960", "Horror, Mystery, Thriller", "Alfred Hitchcock", "8.5", "Anthony Perkins, Janet Leigh, Vera Miles"},
	{"The Shining", "1980", "Drama, Horror", "Stanley Kubrick", "8.4", "Jack Nicholson, Shelley Duvall, Danny Lloyd"},
	{"Halloween", "1978", "Horror, Thriller", "John Carpenter", "7.7", "Donald Pleasence, Jamie Lee Curtis, Tony Moran"},
	{"Alien", "1979", "Horror, Sci-Fi", "Ridley Scott", "8.5", "Sigourney Weaver, Tom Skerritt, John Hurt"},

	{"Titanic", "1997", "Drama, Romance", "James Cameron", "7.9", "Leonardo DiCaprio, Kate Winslet, Billy Zane"},
	{"Casablanca", "1942", "Drama, Romance, War", "Michael Curtiz", "8.5", "Humphrey Bogart, Ingrid Bergman, Paul Henreid"},
	{"The Notebook", "2004", "Drama, Romance", "Nick Cassavetes", "7.8", "Gena Rowlands, James Garner, Rachel McAdams"},
	{"Roman Holiday", "1953", "Comedy, Romance", "William Wyler", "8.0", "Gregory Peck, Audrey Hepburn, Eddie Albert"},
	{"Before Sunrise", "1995", "Drama, Romance", "Richard Linklater", "8.1", "Ethan Hawke, Julie Delpy, Andrea Eckert"},

	{"The Lion King", "1994", "Animation, Adventure, Drama", "Roger Allers, Rob Minkoff", "8.5", "Matthew Broderick, Jeremy Irons, James Earl Jones"},
	{"Finding Nemo", "2003", "Animation, Adventure, Comedy", "Andrew Stanton, Lee Unkrich", "8.2", "Albert Brooks, Ellen DeGeneres, Alexander Gould"},
	{"Shrek", "2001", "Animation, Adventure, Comedy", "Andrew Adamson, Vicky Jenson", "7.9", "Mike Myers, Eddie Murphy, Cameron Diaz"},
	{"Up", "2009", "Animation, Adventure, Comedy", "Pete Docter, Bob Peterson", "8.3", "Edward Asner, Jordan Nagai, John Ratzenberger"},
	{"WALL·E", "2008", "Animation, Adventure, Family", "Andrew Stanton", "8.4", "Ben Burtt, Elissa Knight, Jeff Garlin"},

	{"Mad Max: Fury Road", "2015", "Action, Adventure, Sci-Fi", "George Miller", "8.1", "Tom Hardy, Charlize Theron, Nicholas Hoult"},
	{"John Wick", "2014", "Action, Crime, Thriller", "Chad Stahelski, David Leitch", "7.4", "Keanu Reeves, Michael Nyqvist, Alfie Allen"},
	{"Heat", "1995", "Action, Crime, Drama", "Michael Mann", "8.3", "Al Pacino, Robert De Niro, Val Kilmer"},
	{"The Bourne Identity", "2002", "Action, Mystery, Thriller", "Doug Liman", "7.9", "Matt Damon, Franka Potente, Chris Cooper"},
	{"Gladiator", "2000", "Action, Adventure, Drama", "Ridley Scott", "8.5", "Russell Crowe, Joaquin Phoenix, Connie Nielsen"},

	{"The Departed", "2006", "Crime, Drama, Thriller", "Martin Scorsese", "8.5", "Leonardo DiCaprio, Matt Damon, Jack Nicholson"},
	{"No Country for Old Men", "2007", "Crime, Drama, Thriller", "Ethan Coen, Joel Coen", "8.2", "Tommy Lee Jones, Javier Bardem, Josh Brolin"},
	{"Zodiac", "2007", "Crime, Drama, Mystery", "David Fincher", "7.7", "Jake Gyllenhaal, Robert Downey Jr., Mark Ruffalo"},
	{"Prisoners", "2013", "Crime, Drama, Mystery", "Denis Villeneuve", "8.1", "Hugh Jackman, Jake Gyllenhaal, Viola Davis"},
	{"Gone Girl", "2014", "Drama, Mystery, Thriller", "David Fincher", "8.1", "Ben Affleck, Rosamund Pike, Neil Patrick Harris"},

	{"Citizen Kane", "1941", "Drama, Mystery", "Orson Welles", "8.3", "Orson Welles, Joseph Cotten, Dorothy Comingore"},
	{"Vertigo", "1958", "Mystery, Romance, Thriller", "Alfred Hitchcock", "8.3", "James Stewart, Kim Novak, Barbara Bel Geddes"},
	{"Singin' in the Rain", "1952", "Comedy, Musical, Romance", "Gene Kelly, Stanley Donen", "8.3", "Gene Kelly, Donald O'Connor, Debbie Reynolds"},
	{"Gone with the Wind", "1939", "Drama, History, Romance", "Victor Fleming", "8.2", "Clark Gable, Vivien Leigh, Thomas Mitchell"},
	{"Lawrence of Arabia", "1962", "Adventure, Biography, Drama", "David Lean", "8.3", "Peter O'Toole, Alec Guinness, Anthony Quinn"},

	{"Vizontele", "2001", "Comedy, Drama, History", "Yilmaz Erdogan, Ömer Faruk Sorak", "8.0", "Yilmaz Erdogan, Demet Akbag, Altan Erkekli"},
	{"G.O.R.A.", "2004", "Adventure, Comedy, Sci-Fi", "Ömer Faruk Sorak", "8.0", "Cem Yilmaz, Özge Özberk, Ozan Güven"},
	{"Eşkıya", "1996", "Crime, Drama, Thriller", "Yavuz Turgul", "8.2", "Sener Şen, Uğur Yücel, Sermin Hürmeriç"},
	{"Babam ve Oğlum", "2005", "Drama, Family", "Çağan Irmak", "8.2", "Çetin Tekindor, Fikret Kuşkan, Hümeyra"},
	{"Organize İşler", "2005", "Comedy, Crime", "Yılmaz Erdoğan", "7.4", "Yılmaz Erdoğan, Tolga Çevik, Demet Akbağ"},

	{"Whiplash", "2014", "Drama, Music", "Damien Chazelle", "8.5", "Miles Teller, J.K. Simmons, Melissa Benoist"},
	{"Amadeus", "1984", "Biography, Drama, History", "Milos Forman", "8.4", "F. Murray Abraham, Tom Hulce, Elizabeth Berridge"},
	{"Bohemian Rhapsody", "2018", "Biography, Drama, Music", "Bryan Singer", "8.0", "Rami Malek, Lucy Boynton, Gwilym Lee"},
	{"A Star Is Born", "2018", "Drama, Music, Romance", "Bradley Cooper", "7.6", "Lady Gaga, Bradley Cooper, Sam Elliott"},
	{"8 Mile", "2002", "Drama, Music", "Curtis Hanson", "7.2", "Eminem, Brittany Murphy, Kim Basinger"},

	{"Parasite", "2019", "Comedy, Drama, Thriller", "Bong Joon Ho", "8.5", "Kang-ho Song, Sun-kyun Lee, Yeo-jeong Jo"},
	{"Joker", "2019", "Crime, Drama, Thriller", "Todd Phillips", "8.4", "Joaquin Phoenix, Robert De Niro, Zazie Beetz"},
	{"Avengers: Endgame", "2019", "Action, Adventure, Drama", "Anthony Russo, Joe Russo", "8.4", "Robert Downey Jr., Chris Evans, Mark Ruffalo"},
	{"1917", "2019", "Drama, Thriller, War", "Sam Mendes", "8.2", "George MacKay, Dean-Charles Chapman, Mark Strong"},
	{"Once Upon a Time in Hollywood", "2019", "Comedy, Drama", "Quentin Tarantino", "7.6", "Leonardo DiCaprio, Brad Pitt, Margot Robbie"},
	{"Ford v Ferrari", "2019", "Action, Biography, Drama", "James Mangold", "8.1", "Matt Damon, Christian Bale, Jon Bernthal"},
	{"Knives Out", "2019", "Comedy, Crime, Drama", "Rian Johnson", "7.9", "Daniel Craig, Chris Evans, Ana de Armas"},
	{"Jojo Rabbit", "2019", "Comedy, Drama, War", "Taika Waititi", "7.9", "Roman Griffin Davis, Thomasin McKenzie, Scarlett Johansson"},
	{"The Irishman", "2019", "Biography, Crime, Drama", "Martin Scorsese", "7.8", "Robert De Niro, Al Pacino, Joe Pesci"},
	{"Marriage Story", "2019", "Comedy, Drama, Romance", "Noah Baumbach", "7.9", "Adam Driver, Scarlett Johansson, Julia Greer"},
}
