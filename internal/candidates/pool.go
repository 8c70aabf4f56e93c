// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package candidates

// defaultPool is the built-in candidate pool: working touring acts that
// realistically route through mid-size rooms. Draw numbers are rough
// headline figures used for display, not scoring.
var defaultPool = []Act{
	// High tier: dependable draws for 500-1500 cap rooms.
	{Name: "Japanese Breakfast", Genres: []string{"indie rock", "indie pop"}, Tier: TierHigh, Draw: 1200, Website: "https://japanesebreakfast.rocks"},
	{Name: "Lucy Dacus", Genres: []string{"indie rock"}, Tier: TierHigh, Draw: 1400, Website: "https://lucydacus.com"},
	{Name: "Courtney Barnett", Genres: []string{"indie rock"}, Tier: TierHigh, Draw: 1500, Website: "https://courtneybarnett.com.au"},
	{Name: "Black Midi", Genres: []string{"experimental rock", "math rock"}, Tier: TierHigh, Draw: 900, Website: "https://bmblackmidi.com"},
	{Name: "Alvvays", Genres: []string{"indie pop", "dream pop"}, Tier: TierHigh, Draw: 1300, Website: "https://alvvays.com"},
	{Name: "King Gizzard and the Lizard Wizard", Genres: []string{"psych rock"}, Tier: TierHigh, Draw: 1500, Website: "https://kinggizzardandthelizardwizard.com"},
	{Name: "Big Thief", Genres: []string{"indie folk", "indie rock"}, Tier: TierHigh, Draw: 1500, Website: "https://bigthief.net"},
	{Name: "Turnstile", Genres: []string{"hardcore", "punk"}, Tier: TierHigh, Draw: 1500, Website: "https://turnstilehc.com"},
	{Name: "IDLES", Genres: []string{"post-punk", "punk"}, Tier: TierHigh, Draw: 1400, Website: "https://idlesband.com"},
	{Name: "Khruangbin", Genres: []string{"psych rock", "funk"}, Tier: TierHigh, Draw: 1500, Website: "https://khruangbin.com"},
	{Name: "Sylvan Esso", Genres: []string{"electronic", "indie pop"}, Tier: TierHigh, Draw: 1200, Website: "https://sylvanesso.com"},
	{Name: "Waxahatchee", Genres: []string{"indie folk", "indie rock"}, Tier: TierHigh, Draw: 1100, Website: "https://waxahatchee.com"},
	{Name: "Car Seat Headrest", Genres: []string{"indie rock"}, Tier: TierHigh, Draw: 1300, Website: "https://carseatheadrest.com"},
	{Name: "Sturgill Simpson", Genres: []string{"country", "americana"}, Tier: TierHigh, Draw: 1500, Website: "https://sturgillsimpson.com"},
	{Name: "Tyler Childers", Genres: []string{"country", "americana"}, Tier: TierHigh, Draw: 1500, Website: "https://tylerchildersmusic.com"},
	{Name: "Denzel Curry", Genres: []string{"hip-hop"}, Tier: TierHigh, Draw: 1300, Website: "https://denzelcurry.com"},
	{Name: "JPEGMAFIA", Genres: []string{"hip-hop", "experimental"}, Tier: TierHigh, Draw: 1000, Website: "https://jpegmafia.net"},
	{Name: "100 gecs", Genres: []string{"hyperpop", "electronic"}, Tier: TierHigh, Draw: 1100, Website: "https://100gecs.com"},
	{Name: "Caroline Polachek", Genres: []string{"art pop", "indie pop"}, Tier: TierHigh, Draw: 1400, Website: "https://carolinepolachek.com"},
	{Name: "Men I Trust", Genres: []string{"dream pop", "indie pop"}, Tier: TierHigh, Draw: 1200, Website: "https://menitrust.com"},

	// Normal tier: club-level acts worth checking on every run.
	{Name: "Wednesday", Genres: []string{"indie rock", "shoegaze"}, Draw: 600, Website: "https://wednesdayband.com"},
	{Name: "Hotline TNT", Genres: []string{"shoegaze"}, Draw: 450, Website: "https://hotlinetnt.com"},
	{Name: "Militarie Gun", Genres: []string{"hardcore", "punk"}, Draw: 500, Website: "https://militariegun.com"},
	{Name: "Gel", Genres: []string{"hardcore"}, Draw: 350, Website: "https://gelnj.bandcamp.com"},
	{Name: "Scowl", Genres: []string{"hardcore", "punk"}, Draw: 500, Website: "https://scowl.band"},
	{Name: "MJ Lenderman", Genres: []string{"indie rock", "americana"}, Draw: 700, Website: "https://mjlenderman.com"},
	{Name: "Squirrel Flower", Genres: []string{"indie folk"}, Draw: 300, Website: "https://squirrelflower.net"},
	{Name: "Slow Pulp", Genres: []string{"indie rock"}, Draw: 550, Website: "https://slowpulpband.com"},
	{Name: "Ratboys", Genres: []string{"indie rock"}, Draw: 450, Website: "https://ratboysband.com"},
	{Name: "Dehd", Genres: []string{"indie rock"}, Draw: 600, Website: "https://dehdband.com"},
	{Name: "Horsegirl", Genres: []string{"indie rock", "noise pop"}, Draw: 400, Website: "https://horsegirlband.com"},
	{Name: "Friko", Genres: []string{"indie rock"}, Draw: 350, Website: "https://frikoband.com"},
	{Name: "Geese", Genres: []string{"indie rock", "post-punk"}, Draw: 650, Website: "https://geeseband.com"},
	{Name: "Been Stellar", Genres: []string{"post-punk", "indie rock"}, Draw: 350, Website: "https://beenstellar.com"},
	{Name: "Fontaines D.C.", Genres: []string{"post-punk"}, Draw: 800, Website: "https://fontainesdc.com"},
	{Name: "Shame", Genres: []string{"post-punk"}, Draw: 600, Website: "https://shamebanduk.com"},
	{Name: "Dry Cleaning", Genres: []string{"post-punk"}, Draw: 700, Website: "https://drycleaningband.com"},
	{Name: "Yard Act", Genres: []string{"post-punk"}, Draw: 600, Website: "https://yardactors.com"},
	{Name: "Snail Mail", Genres: []string{"indie rock"}, Draw: 800, Website: "https://snailmail.band"},
	{Name: "Soccer Mommy", Genres: []string{"indie rock"}, Draw: 800, Website: "https://soccermommyband.com"},
	{Name: "Indigo De Souza", Genres: []string{"indie rock"}, Draw: 600, Website: "https://indigodesouza.com"},
	{Name: "Hop Along", Genres: []string{"indie rock"}, Draw: 600, Website: "https://hopalongtheband.com"},
	{Name: "Pile", Genres: []string{"indie rock", "noise rock"}, Draw: 400, Website: "https://pile.bandcamp.com"},
	{Name: "Metz", Genres: []string{"noise rock", "punk"}, Draw: 500, Website: "https://metzztem.com"},
	{Name: "Chat Pile", Genres: []string{"noise rock", "metal"}, Draw: 500, Website: "https://chatpile.bandcamp.com"},
	{Name: "Full of Hell", Genres: []string{"metal", "grindcore"}, Draw: 450, Website: "https://fullofhell.com"},
	{Name: "Gatecreeper", Genres: []string{"metal", "death metal"}, Draw: 500, Website: "https://gatecreeper.net"},
	{Name: "Blood Incantation", Genres: []string{"metal", "death metal"}, Draw: 600, Website: "https://bloodincantation.com"},
	{Name: "Tomb Mold", Genres: []string{"metal", "death metal"}, Draw: 400, Website: "https://tombmold.bandcamp.com"},
	{Name: "Elder", Genres: []string{"metal", "stoner rock"}, Draw: 450, Website: "https://beholdtheelder.com"},
	{Name: "King Buffalo", Genres: []string{"psych rock", "stoner rock"}, Draw: 400, Website: "https://kingbuffalo.com"},
	{Name: "Earthless", Genres: []string{"psych rock"}, Draw: 450, Website: "https://earthlessrips.com"},
	{Name: "Osees", Genres: []string{"psych rock", "garage rock"}, Draw: 800, Website: "https://oseesband.com"},
	{Name: "Ty Segall", Genres: []string{"garage rock", "psych rock"}, Draw: 800, Website: "https://ty-segall.com"},
	{Name: "Shannon and the Clams", Genres: []string{"garage rock"}, Draw: 500, Website: "https://shannonandtheclams.com"},
	{Name: "La Luz", Genres: []string{"surf rock", "garage rock"}, Draw: 450, Website: "https://laluzband.com"},
	{Name: "Mdou Moctar", Genres: []string{"desert blues", "psych rock"}, Draw: 600, Website: "https://mdoumoctar.com"},
	{Name: "Bombino", Genres: []string{"desert blues"}, Draw: 450, Website: "https://bombinomusic.com"},
	{Name: "Hermanos Gutierrez", Genres: []string{"instrumental", "latin"}, Draw: 700, Website: "https://hermanosgutierrez.ch"},
	{Name: "Sierra Ferrell", Genres: []string{"americana", "country"}, Draw: 800, Website: "https://sierraferrellmusic.com"},
	{Name: "Colter Wall", Genres: []string{"country"}, Draw: 800, Website: "https://colterwall.com"},
	{Name: "Charley Crockett", Genres: []string{"country", "americana"}, Draw: 800, Website: "https://charleycrockett.com"},
	{Name: "Margo Price", Genres: []string{"country", "americana"}, Draw: 700, Website: "https://margoprice.net"},
	{Name: "Adrianne Lenker", Genres: []string{"indie folk"}, Draw: 800, Website: "https://adriannelenker.com"},
	{Name: "Florist", Genres: []string{"indie folk"}, Draw: 300, Website: "https://floristtheband.com"},
	{Name: "Haley Heynderickx", Genres: []string{"indie folk"}, Draw: 400, Website: "https://haleyheynderickx.com"},
	{Name: "Tim Hecker", Genres: []string{"electronic", "ambient"}, Draw: 450, Website: "https://sunblind.net"},
	{Name: "Floating Points", Genres: []string{"electronic"}, Draw: 800, Website: "https://floatingpoints.co.uk"},
	{Name: "Jamie xx", Genres: []string{"electronic"}, Draw: 800, Website: "https://jamiexx.com"},
	{Name: "Overmono", Genres: []string{"electronic"}, Draw: 700, Website: "https://overmono.net"},
	{Name: "Jungle", Genres: []string{"electronic", "funk"}, Draw: 800, Website: "https://junglejunglejungle.com"},
	{Name: "Thee Sacred Souls", Genres: []string{"soul"}, Draw: 800, Website: "https://theesacredsouls.com"},
	{Name: "Durand Jones and The Indications", Genres: []string{"soul"}, Draw: 700, Website: "https://durandjonesandtheindications.com"},
	{Name: "Black Pumas", Genres: []string{"soul", "psych rock"}, Draw: 800, Website: "https://theblackpumas.com"},
	{Name: "Madlib", Genres: []string{"hip-hop"}, Draw: 700, Website: "https://madlibinvazion.com"},
	{Name: "Open Mike Eagle", Genres: []string{"hip-hop"}, Draw: 350, Website: "https://mikeeagle.net"},
	{Name: "billy woods", Genres: []string{"hip-hop"}, Draw: 450, Website: "https://backwoodzstudioz.com"},
	{Name: "Armand Hammer", Genres: []string{"hip-hop"}, Draw: 400, Website: "https://backwoodzstudioz.com"},
	{Name: "Goose", Genres: []string{"jam"}, Draw: 1500, Website: "https://goosetheband.com"},
	{Name: "Billy Strings", Genres: []string{"bluegrass", "jam"}, Draw: 1500, Website: "https://billystrings.com"},
	{Name: "Greensky Bluegrass", Genres: []string{"bluegrass", "jam"}, Draw: 1200, Website: "https://greenskybluegrass.com"},
	{Name: "Molly Tuttle", Genres: []string{"bluegrass"}, Draw: 700, Website: "https://mollytuttlemusic.com"},
}
