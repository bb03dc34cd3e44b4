package gazetteer

// Municipality holds the static street list and center coordinates
// for one surveyed region. There is no mutation and no external
// data source behind it.
type Municipality struct {
	Name      string
	Latitude  float64
	Longitude float64
	Streets   []string
}

// BinTypes is the fixed set of bin-type tags accepted on an entry.
var BinTypes = []string{"Green", "Blue", "Brown", "Yellow"}

// IsBinType reports whether tag is one of the accepted bin types.
func IsBinType(tag string) bool {
	for _, t := range BinTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// Default returns the municipality currently in scope (Glyfada).
func Default() Municipality {
	return municipalities[0]
}

// Lookup returns the municipality with the given name.
func Lookup(name string) (Municipality, bool) {
	for _, m := range municipalities {
		if m.Name == name {
			return m, true
		}
	}
	return Municipality{}, false
}

var municipalities = []Municipality{
	{
		Name:      "Glyfada",
		Latitude:  37.8667,
		Longitude: 23.7667,
		Streets:   glyfadaStreets,
	},
}

// Predefined streets for Glyfada Municipality.
var glyfadaStreets = []string{
	"Achilleos",
	"Adikithiron",
	"Agamemnonos",
	"Agias Lavras",
	"Agias Triados",
	"Agias Varvaras",
	"Agiou Fanouriou",
	"Agiou Gerassimou",
	"Agiou Ioanni",
	"Agiou Konstadinou",
	"Agiou Mina",
	"Agiou Nektariou",
	"Agiou Nikolaou Avenue",
	"Agiou Pavlou",
	"Agiou Trifonos",
	"Agiou Vassiliou",
	"Agissilaou",
	"Agriniou",
	"Aidiniou",
	"Akrokorinthou",
	"Akrotiriou",
	"Alkiviadou",
	"Alon",
	"Alonnissou",
	"Alsous",
	"Amerikis",
	"Amfissis",
	"Ammochostou",
	"Amorgou",
	"Anafis",
	"Analipseos",
	"Anatolikis Romilias",
	"Anaxagora",
	"Androutsou Odissea",
	"Antheon",
	"Apo Anatolis",
	"Apollonos",
	"Arachthou",
	"Archimidous",
	"Archipelagous",
	"Aretis",
	"Argirokastrou",
	"Argous",
	"Aristidou",
	"Aristippou",
	"Aristofanous",
	"Aristomenous",
	"Aristotelous",
	"Arkadias",
	"Artemidos",
	"Artemissiou",
	"Artis",
	"Asklipiou",
	"Astipaleas",
	"Athanatou Konstadinou Avenue",
	"Athonos",
	"Attikis",
	"Avlonas",
	"Avras",
	"Azofikis",
	"Bakogianni Pavlou",
	"Botsari Markou",
	"Bouboulinas",
	"Bournova",
	"Chalkis",
	"Chanion",
	"Chimarras",
	"Chiou",
	"Choras",
	"Chrissostomou Smirnis",
	"Dardanellion",
	"Daskalogianni",
	"Daskaroli",
	"Davaki",
	"Delfon",
	"Dervenakion",
	"Despoti Karavassili",
	"Diadochou Pavlou",
	"Diakou Athanassiou",
	"Dikeossinis",
	"Dilinon",
	"Dilou",
	"Dimela Manoli",
	"Dimokratias",
	"Dimosthenis",
	"Dionissiou",
	"Doiranis",
	"Doukissis Plakentias",
	"Doxapatri",
	"Dragoumi",
	"Egnatias",
	"Eirinis",
	"Eleftheriou Venizelou",
	"Elenis",
	"Ellinidos",
	"Ermoupolis",
	"Esperidon",
	"Etolias",
	"Evaggelistrias",
	"Evrou",
	"Filellinon",
	"Flisvou",
	"Fokidos",
	"Fotila",
	"Frangiska",
	"Galanis",
	"Galinis",
	"Garibaldi",
	"Gennimata",
	"Georgiou",
	"Gkolemi",
	"Gounari",
	"Gregorias",
	"Grigoriou Lambraki",
	"Iassiou",
	"Ikarias",
	"Iliados",
	"Ionos",
	"Ippokratous",
	"Ithakis",
	"Kalamatas",
	"Kalimnos",
	"Kalogera",
	"Kanari",
	"Kapodistrias",
	"Karpenissiou",
	"Karyatides",
	"Kassandras",
	"Konstantinou Karamanli",
	"Korinthou",
	"Kornilia",
	"Koumoundourou",
	"Kriti",
	"Kyprou",
	"Kyrillos",
	"Laodikis",
	"Laskareos",
	"Lazaraki",
	"Leoforos Metaxa",
	"Leoforos Vouliagmenis",
	"Lesvou",
	"Lidorikiou",
	"Livadias",
	"Loukianou",
	"Lykavitou",
	"Makrigianni",
	"Mantinias",
	"Markou Mpotsari",
	"Megalou Alexandrou",
	"Messinias",
	"Metaxa",
	"Miaouli",
	"Mikras Asias",
	"Militiadou",
	"Mirson",
	"Monastiraki",
	"Moreas",
	"Navarinou",
	"Nikis",
	"Odyssea",
	"Olympiados",
	"Orestou",
	"Panagi Tsaldari",
	"Papadiamandopoulou",
	"Papanastasiou",
	"Paraskevopoulos",
	"Paros",
	"Patriarchou Gregoriou",
	"Poseidonos",
	"Rigillis",
	"Salaminos",
	"Samou",
	"Seirinon",
	"Sivitanidou",
	"Solomou",
	"Spartis",
	"Stavrou",
	"Stratigou Kallari",
	"Stratigou Kontouli",
	"Syggrou",
	"Terpandrou",
	"Themistokleous",
	"Thessalias",
	"Thessalonikis",
	"Thiras",
	"Thivon",
	"Tinou",
	"Tsimiski",
	"Valaoritou",
	"Vassileos Konstantinou",
	"Vassileos Pavlou",
	"Vatatzi",
	"Veikou",
	"Xenofontos",
	"Ypsilantou",
	"Zakinthou",
	"Zisimopoulou",
}
