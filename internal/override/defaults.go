package override

// Defaults returns the exceptions curated for the titles published so far.
func Defaults() []Entry {
	return []Entry{
		{Title: "Brutal Football", File: "rjp.INGAME", Subsongs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{Title: "Brutal Football", File: "rjp.LOCKER", Subsongs: []int{1, 2}},
		{Title: "Brutal Football", File: "rjp.TITLE", Single: true, Subsongs: []int{1}},
		{Title: "Cannon Fodder", File: "rjp.DESBASE", Subsongs: []int{2, 4}},
		{Title: "Cannon Fodder", File: "rjp.ICEBASE", Subsongs: []int{1, 2, 4}},
		{Title: "Cannon Fodder", File: "rjp.INTBASE", Subsongs: []int{1, 3, 4, 5}},
		{Title: "Cannon Fodder", File: "rjp.JON", Subsongs: []int{0, 6, 7, 8, 12, 15}},
		{Title: "Cannon Fodder", File: "rjp.JUNBASE", Subsongs: []int{1, 2, 4, 5, 6, 7}},
		{Title: "Cannon Fodder", File: "rjp.MORBASE", Subsongs: []int{1, 2, 3, 4}},
		{Title: "Cannon Fodder", File: "rjp.WARX4", Subsongs: []int{0}},
		{Title: "Cannon Fodder 2", File: "rjp.DESBASE", Subsongs: []int{1, 2, 3, 4, 5, 6, 7}},
		{Title: "Cannon Fodder 2", File: "rjp.ICEBASE", Subsongs: []int{1, 2, 3, 4, 5, 6, 7}},
		{Title: "Cannon Fodder 2", File: "rjp.INTBASE", Subsongs: []int{1, 2, 3, 4, 5, 6, 7}},
		{Title: "Cannon Fodder 2", File: "rjp.JON", Subsongs: []int{0, 6, 7, 8, 12, 15}},
		{Title: "Cannon Fodder 2", File: "rjp.JUNBASE", Subsongs: []int{1, 2, 3, 4, 5, 6, 7}},
		{Title: "Cannon Fodder 2", File: "rjp.KILLER", Single: true, Subsongs: []int{3}},
		{Title: "Cannon Fodder 2", File: "rjp.MORBASE", Subsongs: []int{1, 2, 4, 5, 6, 7}},
		{Title: "Chaos Engine, The", File: "rjp.game_end", Subsongs: []int{2, 3, 5, 6, 9, 10, 11, 14, 16, 17, 18, 19}},
		{Title: "Chaos Engine, The", File: "rjp.ingame_1", Subsongs: Range(4, 37)},
		{Title: "Chaos Engine, The", File: "rjp.ingame_2", Subsongs: Range(3, 37)},
		{Title: "Chaos Engine, The", File: "rjp.ingame_3", Subsongs: Range(3, 36)},
		{Title: "Chaos Engine, The", File: "rjp.ingame_4", Subsongs: Range(4, 37)},
		{Title: "Chaos Engine, The", File: "rjp.menu", Subsongs: Range(2, 19)},
		{Title: "Chaos Engine, The", File: "Unused/rjp.Chaos_Engine_Demo", Subsongs: append([]int{1}, Range(4, 37)...)},
		{Title: "Chaos Engine, The", File: "Unused/rjp.SHOP_S", Subsongs: Range(1, 8)},
		{Title: "Diggers", File: "rjp.dig", Subsongs: []int{24, 26, 27, 28, 29, 30, 31, 33}},
		// No decoder handles these; the lists come from listening.
		{Title: "Pinball Illusions", File: "pru2.intro", Subsongs: []int{0, 52}},
		{Title: "Pinball Illusions", File: "pru2.t1_law_n_justice-music", Subsongs: []int{0, 1, 13, 18, 22, 25, 27, 31, 38, 47, 48, 49, 51, 52, 59, 60, 66}},
		{Title: "Pinball Illusions", File: "pru2.t1_law_n_justice-sfx", Subsongs: Range(0, 22)},
		{Title: "Pinball Illusions", File: "pru2.t2_babewatch-music", Subsongs: []int{0, 1, 16, 17, 29, 30, 51, 57, 63, 64, 68, 70, 73, 75, 76, 77}},
		{Title: "Pinball Illusions", File: "pru2.t2_babewatch-sfx", Subsongs: []int{0, 1, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 15, 17, 19, 20, 21, 22, 23, 24, 27}},
		{Title: "Pinball Illusions", File: "pru2.t3_extreme_sports-music", Subsongs: []int{0, 1, 18, 21, 25, 30, 35, 37, 41, 43, 48, 51, 55, 58, 61, 62, 63, 64, 66, 67, 68, 69}},
		{Title: "Pinball Illusions", File: "pru2.t3_extreme_sports-sfx", Subsongs: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 14, 15}},
		// AdLib and XMI titles from the PC collection. Their lists are used
		// as they stand, so one-element lists are marked single.
		{Title: "Dune II", File: "DUNE0.ADL", Subsongs: []int{2, 4}},
		{Title: "Dune II", File: "DUNE1.ADL", Subsongs: []int{2, 3, 4, 5, 6}},
		{Title: "Dune II", File: "DUNE10.ADL", Subsongs: []int{2, 7}},
		{Title: "Dune II", File: "DUNE11.ADL", Single: true, Subsongs: []int{7}},
		{Title: "Dune II", File: "DUNE12.ADL", Single: true, Subsongs: []int{7}},
		{Title: "Dune II", File: "DUNE13.ADL", Single: true, Subsongs: []int{7}},
		{Title: "Dune II", File: "DUNE14.ADL", Single: true, Subsongs: []int{7}},
		{Title: "Dune II", File: "DUNE15.ADL", Single: true, Subsongs: []int{7}},
		{Title: "Dune II", File: "DUNE16.ADL", Subsongs: []int{7, 8}},
		{Title: "Dune II", File: "DUNE17.ADL", Single: true, Subsongs: []int{4}},
		{Title: "Dune II", File: "DUNE18.ADL", Single: true, Subsongs: []int{6}},
		{Title: "Dune II", File: "DUNE19.ADL", Subsongs: []int{2, 3, 4}},
		{Title: "Dune II", File: "DUNE2.ADL", Single: true, Subsongs: []int{6}},
		{Title: "Dune II", File: "DUNE20.ADL", Single: true, Subsongs: []int{2}},
		{Title: "Dune II", File: "DUNE3.ADL", Single: true, Subsongs: []int{6}},
		{Title: "Dune II", File: "DUNE4.ADL", Single: true, Subsongs: []int{6}},
		{Title: "Dune II", File: "DUNE5.ADL", Single: true, Subsongs: []int{6}},
		{Title: "Dune II", File: "DUNE6.ADL", Single: true, Subsongs: []int{6}},
		{Title: "Dune II", File: "DUNE7.ADL", Subsongs: []int{2, 3, 4, 6}},
		{Title: "Dune II", File: "DUNE8.ADL", Subsongs: []int{2, 3}},
		{Title: "Dune II", File: "DUNE9.ADL", Subsongs: []int{4, 5}},
		{Title: "Eye of the Beholder", File: "SOUND.ADL", Subsongs: []int{1, 2, 3}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "AZURE.ADL", Subsongs: []int{52, 54, 55, 57, 59, 61}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "CATACOMB.ADL", Subsongs: []int{53, 57, 59}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "CRIMSON1.ADL", Subsongs: []int{59, 60, 61, 62}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "CRIMSON2.ADL", Subsongs: []int{52, 53, 54, 55, 56}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "FINALE1.ADL", Single: true, Subsongs: []int{1}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "FINALE2.ADL", Single: true, Subsongs: []int{1}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "FOREST.ADL", Single: true, Subsongs: []int{52}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "INTRO.ADL", Subsongs: []int{12, 13}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "MEZANINE.ADL", Subsongs: []int{52, 53, 58}},
		{Title: "Eye of the Beholder II: The Legend of Darkmoon", File: "SILVER.ADL", Subsongs: []int{54, 55, 59, 60, 61}},
		{Title: "Jagged Alliance", File: "DAY.XMI", Subsongs: []int{1, 2, 3, 4, 5, 6}},
		{Title: "Jagged Alliance", File: "DAYGM.XMI", Subsongs: []int{}},
		{Title: "Jagged Alliance", File: "INTRO.XMI", Subsongs: []int{1, 2, 3, 4}},
		{Title: "Jagged Alliance", File: "INTROGM.XMI", Subsongs: []int{}},
		{Title: "Jagged Alliance", File: "MENUS.XMI", Subsongs: []int{1, 2, 3, 4, 5}},
		{Title: "Jagged Alliance", File: "MENUSGM.XMI", Subsongs: []int{}},
		{Title: "Legend of Kyrandia: Book One, The", File: "intro.adl", Subsongs: []int{2, 3, 4, 5}},
		{Title: "Legend of Kyrandia: Book One, The", File: "kyra1a.adl", Subsongs: []int{2, 3, 4}},
		{Title: "Legend of Kyrandia: Book One, The", File: "kyra1b.adl", Subsongs: []int{2, 3, 4, 6, 8}},
		{Title: "Legend of Kyrandia: Book One, The", File: "kyra2a.adl", Subsongs: []int{2, 3, 4, 5, 6, 7}},
		{Title: "Legend of Kyrandia: Book One, The", File: "kyra3a.adl", Subsongs: []int{3, 4}},
		{Title: "Legend of Kyrandia: Book One, The", File: "kyra4a.adl", Subsongs: []int{2, 3, 7, 8}},
		{Title: "Legend of Kyrandia: Book One, The", File: "kyra4b.adl", Subsongs: []int{}},
		{Title: "Legend of Kyrandia: Book One, The", File: "kyra5a.adl", Subsongs: []int{2, 3, 4, 5}},
		{Title: "Legend of Kyrandia: Book One, The", File: "kyra5b.adl", Subsongs: []int{2, 5, 8, 9}},
		{Title: "Legend of Kyrandia: Book One, The", File: "kyramisc.adl", Subsongs: []int{2, 3}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2FINALE.ADL", Subsongs: []int{2, 3, 4}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2INTRO.ADL", Subsongs: []int{2, 3, 4, 5, 6, 7, 8}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2SFX.ADL", Subsongs: []int{}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST1.ADL", Subsongs: []int{2, 3}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST10.ADL", Subsongs: []int{2, 3, 4, 5, 6, 7, 8, 9}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST11.ADL", Subsongs: []int{2, 3, 4, 5, 6, 7}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST12.ADL", Subsongs: []int{2, 3, 4, 5, 6, 7, 8, 9}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST13.ADL", Subsongs: []int{2, 3, 4, 5, 6, 7, 8, 9}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST14.ADL", Single: true, Subsongs: []int{2}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST15.ADL", Subsongs: []int{2, 3, 4, 5}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST2.ADL", Subsongs: []int{2, 3}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST3.ADL", Subsongs: []int{2, 3}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST4.ADL", Subsongs: []int{2, 3}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST5.ADL", Subsongs: []int{2, 3, 4, 5, 6, 7}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST6.ADL", Subsongs: []int{3, 4}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST7.ADL", Subsongs: []int{2, 3, 4, 5}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST8.ADL", Subsongs: []int{2, 3, 4, 5, 6, 7, 8, 9}},
		{Title: "Legend of Kyrandia: Book Two - The Hand of Fate, The", File: "K2TEST9.ADL", Subsongs: []int{2, 4, 5, 6, 7, 8, 9}},
	}
}
