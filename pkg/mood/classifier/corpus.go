package classifier

// Example is a labeled training phrase
type Example struct {
	Text  string
	Label Label
}

// TrainingCorpus returns the embedded bilingual (Swedish + English) corpus
// used to train the sentiment pipeline. The phrases are hand-curated short
// mood-journal entries; character n-grams over them are robust to Swedish
// inflection without a stemmer.
func TrainingCorpus() []Example {
	return []Example{
		// Positive, Swedish
		{"jag känner mig jättebra idag", LabelPositive},
		{"jag är så glad och tacksam", LabelPositive},
		{"vilken härlig dag det har varit", LabelPositive},
		{"jag mår verkligen bra just nu", LabelPositive},
		{"allt känns lugnt och tryggt", LabelPositive},
		{"jag är stolt över vad jag gjort", LabelPositive},
		{"det gick fantastiskt bra på jobbet", LabelPositive},
		{"jag känner mig pigg och full av energi", LabelPositive},
		{"en underbar kväll med familjen", LabelPositive},
		{"jag är lycklig över mitt liv", LabelPositive},
		{"jag känner hopp inför framtiden", LabelPositive},
		{"det var roligt att träffa vännerna", LabelPositive},
		{"jag sov gott och vaknade utvilad", LabelPositive},
		{"promenaden gjorde mig på bättre humör", LabelPositive},
		{"jag är nöjd med min dag", LabelPositive},
		{"känner mig stark och motiverad", LabelPositive},
		{"idag var en riktigt bra dag", LabelPositive},
		{"jag känner mig älskad och uppskattad", LabelPositive},
		{"solen sken och jag mådde toppen", LabelPositive},
		{"jag är glad", LabelPositive},
		// Positive, English
		{"i feel really great today", LabelPositive},
		{"i am so happy and grateful", LabelPositive},
		{"what a wonderful day it has been", LabelPositive},
		{"everything feels calm and safe", LabelPositive},
		{"i am proud of what i accomplished", LabelPositive},
		{"work went amazingly well", LabelPositive},
		{"i feel energetic and rested", LabelPositive},
		{"a lovely evening with my family", LabelPositive},
		{"i am happy with my life right now", LabelPositive},
		{"i feel hopeful about the future", LabelPositive},
		{"it was fun meeting my friends", LabelPositive},
		{"i slept well and woke up refreshed", LabelPositive},
		{"the walk put me in a better mood", LabelPositive},
		{"i am satisfied with my day", LabelPositive},
		{"feeling strong and motivated", LabelPositive},
		{"today was a really good day", LabelPositive},
		{"i feel loved and appreciated", LabelPositive},
		{"i am happy", LabelPositive},

		// Negative, Swedish
		{"jag känner mig ledsen och trött", LabelNegative},
		{"allt känns hopplöst just nu", LabelNegative},
		{"jag är så orolig för allting", LabelNegative},
		{"jag mår dåligt idag", LabelNegative},
		{"jag känner mig ensam och övergiven", LabelNegative},
		{"det var en jobbig dag på jobbet", LabelNegative},
		{"jag är arg och frustrerad", LabelNegative},
		{"ångesten kommer tillbaka på kvällarna", LabelNegative},
		{"jag känner mig stressad hela tiden", LabelNegative},
		{"jag orkar ingenting längre", LabelNegative},
		{"jag är rädd att det aldrig blir bättre", LabelNegative},
		{"sov dåligt och känner mig nere", LabelNegative},
		{"jag känner mig värdelös idag", LabelNegative},
		{"allt går fel för mig", LabelNegative},
		{"jag är så nedstämd och deppig", LabelNegative},
		{"det känns tungt att gå upp på morgonen", LabelNegative},
		{"jag grät hela kvällen", LabelNegative},
		{"jag känner sorg över förlusten", LabelNegative},
		{"jag är ledsen", LabelNegative},
		{"jag mår sämre än igår", LabelNegative},
		// Negative, English
		{"i feel sad and tired", LabelNegative},
		{"everything feels hopeless right now", LabelNegative},
		{"i am so anxious about everything", LabelNegative},
		{"i feel terrible today", LabelNegative},
		{"i feel lonely and abandoned", LabelNegative},
		{"it was a rough day at work", LabelNegative},
		{"i am angry and frustrated", LabelNegative},
		{"the anxiety comes back at night", LabelNegative},
		{"i feel stressed all the time", LabelNegative},
		{"i have no energy left", LabelNegative},
		{"i am afraid it will never get better", LabelNegative},
		{"slept badly and feeling down", LabelNegative},
		{"i feel worthless today", LabelNegative},
		{"everything is going wrong for me", LabelNegative},
		{"i am so depressed and miserable", LabelNegative},
		{"i cried all evening", LabelNegative},
		{"i am sad", LabelNegative},
		{"i feel worse than yesterday", LabelNegative},

		// Neutral, Swedish
		{"jag åt lunch vid tolv", LabelNeutral},
		{"idag är det onsdag", LabelNeutral},
		{"jag tog bussen till stan", LabelNeutral},
		{"vädret var mulet under dagen", LabelNeutral},
		{"jag handlade mat efter jobbet", LabelNeutral},
		{"mötet flyttades till nästa vecka", LabelNeutral},
		{"jag läste en bok i soffan", LabelNeutral},
		{"jag skrev klart rapporten", LabelNeutral},
		{"vi tittade på nyheterna ikväll", LabelNeutral},
		{"jag gick och lade mig vid elva", LabelNeutral},
		{"det regnade lite på eftermiddagen", LabelNeutral},
		{"jag ringde min syster efter middagen", LabelNeutral},
		{"jag diskade och städade köket", LabelNeutral},
		{"tåget var några minuter försenat", LabelNeutral},
		{"jag jobbade hemifrån idag", LabelNeutral},
		{"vi planerade helgens inköp", LabelNeutral},
		// Neutral, English
		{"i had lunch at noon", LabelNeutral},
		{"today is wednesday", LabelNeutral},
		{"i took the bus downtown", LabelNeutral},
		{"the weather was cloudy during the day", LabelNeutral},
		{"i bought groceries after work", LabelNeutral},
		{"the meeting was moved to next week", LabelNeutral},
		{"i read a book on the couch", LabelNeutral},
		{"i finished writing the report", LabelNeutral},
		{"we watched the news tonight", LabelNeutral},
		{"i went to bed around eleven", LabelNeutral},
		{"it rained a little in the afternoon", LabelNeutral},
		{"i called my sister after dinner", LabelNeutral},
		{"i did the dishes and cleaned the kitchen", LabelNeutral},
		{"the train was a few minutes late", LabelNeutral},
		{"i worked from home today", LabelNeutral},
		{"we planned the weekend shopping", LabelNeutral},
	}
}
