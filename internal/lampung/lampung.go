// Package lampung carries the built-in reference data for the Lampung
// province deployment: district centroids with their common news aliases,
// the classification lexicons for informal Indonesian complaint text, and
// the default anchor-to-district probe map.
//
// Everything here is returned by value from constructor-style functions so
// callers get immutable configuration objects; tests can swap in their own
// datasets without touching package state.
package lampung

import "github.com/wirasatya/resilience-monitor/internal/domain"

// Districts returns the tracked kecamatan in their fixed, documented order.
// The order matters: it is the gazetteer tie-break order and the output
// order of every snapshot.
//
// The province name itself is deliberately not an alias of anything —
// nearly every regional headline mentions it, so it would swallow all
// unresolved text.
func Districts() []domain.District {
	return []domain.District{
		// Bandar Lampung
		{Name: "Tanjung Karang Pusat", Regency: "Bandar Lampung", Lat: -5.4175, Lon: 105.2621},
		{Name: "Tanjung Karang Barat", Regency: "Bandar Lampung", Lat: -5.4200, Lon: 105.2400},
		{Name: "Tanjung Karang Timur", Regency: "Bandar Lampung", Lat: -5.4150, Lon: 105.2750},
		{Name: "Teluk Betung Utara", Regency: "Bandar Lampung", Lat: -5.4294, Lon: 105.2618},
		{Name: "Teluk Betung Barat", Regency: "Bandar Lampung", Lat: -5.4500, Lon: 105.2400},
		{Name: "Teluk Betung Selatan", Regency: "Bandar Lampung", Lat: -5.4600, Lon: 105.2550},
		{Name: "Kedaton", Regency: "Bandar Lampung", Lat: -5.3950, Lon: 105.2500},
		{Name: "Sukarame", Regency: "Bandar Lampung", Lat: -5.3836, Lon: 105.2717},
		{Name: "Way Halim", Regency: "Bandar Lampung", Lat: -5.3900, Lon: 105.2850},
		{Name: "Rajabasa", Regency: "Bandar Lampung", Lat: -5.3648, Lon: 105.2436},
		{Name: "Kemiling", Regency: "Bandar Lampung", Lat: -5.3800, Lon: 105.2200},
		{Name: "Langkapura", Regency: "Bandar Lampung", Lat: -5.3700, Lon: 105.2350},
		{Name: "Enggal", Regency: "Bandar Lampung", Lat: -5.4260, Lon: 105.2580},
		{Name: "Kedamaian", Regency: "Bandar Lampung", Lat: -5.4100, Lon: 105.2700},
		{Name: "Labuhan Ratu", Regency: "Bandar Lampung", Lat: -5.3750, Lon: 105.2650},
		{Name: "Sukabumi", Regency: "Bandar Lampung", Lat: -5.4050, Lon: 105.2900},
		{Name: "Tanjung Senang", Regency: "Bandar Lampung", Lat: -5.3700, Lon: 105.2950},
		{Name: "Way Kandis", Regency: "Bandar Lampung", Lat: -5.3600, Lon: 105.2550},
		// Metro
		{Name: "Metro Pusat", Regency: "Metro", Lat: -5.1140, Lon: 105.3060},
		{Name: "Metro Timur", Regency: "Metro", Lat: -5.1100, Lon: 105.3200},
		{Name: "Metro Barat", Regency: "Metro", Lat: -5.1180, Lon: 105.2900},
		// Kabupaten seats and larger kecamatan
		{Name: "Kalianda", Regency: "Lampung Selatan", Lat: -5.7230, Lon: 105.6170},
		{Name: "Natar", Regency: "Lampung Selatan", Lat: -5.3100, Lon: 105.2800},
		{Name: "Jati Agung", Regency: "Lampung Selatan", Lat: -5.3300, Lon: 105.3000},
		{Name: "Tanjung Bintang", Regency: "Lampung Selatan", Lat: -5.3500, Lon: 105.3600},
		{Name: "Sidomulyo", Regency: "Lampung Selatan", Lat: -5.5500, Lon: 105.5500},
		{Name: "Bakauheni", Regency: "Lampung Selatan", Lat: -5.8700, Lon: 105.7500},
		{Name: "Pringsewu", Regency: "Pringsewu", Lat: -5.3580, Lon: 104.9830},
		{Name: "Gunung Sugih", Regency: "Lampung Tengah", Lat: -4.8800, Lon: 105.2700},
		{Name: "Terbanggi Besar", Regency: "Lampung Tengah", Lat: -4.8400, Lon: 105.2900},
		{Name: "Kotabumi", Regency: "Lampung Utara", Lat: -4.8300, Lon: 104.8900},
		{Name: "Sukadana", Regency: "Lampung Timur", Lat: -5.3900, Lon: 105.5100},
		{Name: "Gedong Tataan", Regency: "Pesawaran", Lat: -5.3900, Lon: 105.0800},
		{Name: "Kota Agung", Regency: "Tanggamus", Lat: -5.4900, Lon: 104.6300},
		{Name: "Liwa", Regency: "Lampung Barat", Lat: -5.0500, Lon: 104.0700},
		{Name: "Blambangan Umpu", Regency: "Way Kanan", Lat: -4.6500, Lon: 104.5500},
		{Name: "Menggala", Regency: "Tulang Bawang", Lat: -4.5400, Lon: 105.2400},
		{Name: "Tulang Bawang Tengah", Regency: "Tulang Bawang Barat", Lat: -4.4500, Lon: 105.0500},
	}
}

// Lexicon returns the classification keyword lists tuned for informal
// Indonesian complaint text. Multi-word non-digital phrases are the
// precision anchor: "jalan rusak" is road damage, "jaringan rusak" is a
// network fault, and the phrase lists keep the two apart.
func Lexicon() domain.Lexicon {
	return domain.Lexicon{
		Digital: []string{
			"internet", "wifi", "sinyal", "jaringan", "koneksi", "gangguan",
			"lemot", "lambat", "buffering", "rto", "timeout", "disconnect",
			"tidak bisa konek", "putus nyambung", "down",
			// Providers double as digital-issue markers: a provider name in
			// a complaint is almost always a connectivity complaint.
			"indihome", "telkomsel", "biznet", "smartfren", "myrepublic",
			"first media", "xl axiata",
		},
		NonDigital: []string{
			"jalan rusak", "jalan berlubang", "banjir", "pohon tumbang",
			"air pdam", "sampah menumpuk", "macet total", "longsor",
			"jembatan putus",
		},
		PowerOutage: []string{
			"mati lampu", "listrik padam", "listrik mati", "pemadaman",
			"pln padam", "byarpet",
		},

		SevereWords:      []string{"mati total", "rto", "down", "padam", "tidak bisa", "error"},
		ModerateWords:    []string{"lemot", "lambat", "gangguan", "putus", "buffering"},
		MildWords:        []string{"agak", "sedikit", "kadang"},
		IntensifierWords: []string{"banget", "parah", "sangat", "terus", "tiap hari", "seharian"},

		CriticalWords: []string{"mati total", "rto", "down semua", "lumpuh", "putus total"},
		WarningWords:  []string{"gangguan", "lemot", "lambat", "putus nyambung", "buffering"},
	}
}

// Aliases returns the alias lists for districts commonly shortened in news
// copy, keyed by canonical name. Merged into Districts by WithAliases.
func Aliases() map[string][]string {
	return map[string][]string{
		"Kalianda":  {"Lamsel"},
		"Kotabumi":  {"Lamut"},
		"Sukadana":  {"Lamtim"},
		"Liwa":      {"Lambar"},
		"Menggala":  {"Tuba"},
		"Pringsewu": {"Kota Pringsewu"},
	}
}

// WithAliases returns Districts with the news aliases merged in.
func WithAliases() []domain.District {
	districts := Districts()
	aliases := Aliases()
	for i := range districts {
		if extra, ok := aliases[districts[i].Name]; ok {
			districts[i].Aliases = append(districts[i].Aliases, extra...)
		}
	}
	return districts
}

// Anchors returns the default probe targets: institutional endpoints pinned
// to the district hosting them. Several districts host more than one anchor;
// districts without an anchor report "no data" for infrastructure.
func Anchors() []domain.Anchor {
	return []domain.Anchor{
		{Host: "unila.ac.id", Name: "Universitas Lampung", District: "Rajabasa"},
		{Host: "itera.ac.id", Name: "Institut Teknologi Sumatera", District: "Jati Agung"},
		{Host: "radenintan.ac.id", Name: "UIN Raden Intan", District: "Sukarame"},
		{Host: "bandarlampungkota.go.id", Name: "Pemkot Bandar Lampung", District: "Tanjung Karang Pusat"},
		{Host: "lampungprov.go.id", Name: "Pemprov Lampung", District: "Teluk Betung Utara"},
		{Host: "metrokota.go.id", Name: "Pemkot Metro", District: "Metro Pusat"},
		{Host: "lampungselatankab.go.id", Name: "Pemkab Lampung Selatan", District: "Kalianda"},
		{Host: "lampungtengahkab.go.id", Name: "Pemkab Lampung Tengah", District: "Gunung Sugih"},
		{Host: "lampungutarakab.go.id", Name: "Pemkab Lampung Utara", District: "Kotabumi"},
		{Host: "lampungtimurkab.go.id", Name: "Pemkab Lampung Timur", District: "Sukadana"},
		{Host: "lampungbaratkab.go.id", Name: "Pemkab Lampung Barat", District: "Liwa"},
		{Host: "pringsewukab.go.id", Name: "Pemkab Pringsewu", District: "Pringsewu"},
		{Host: "tanggamus.go.id", Name: "Pemkab Tanggamus", District: "Kota Agung"},
		{Host: "waykanankab.go.id", Name: "Pemkab Way Kanan", District: "Blambangan Umpu"},
		{Host: "tulangbawangkab.go.id", Name: "Pemkab Tulang Bawang", District: "Menggala"},
		{Host: "pesawarankab.go.id", Name: "Pemkab Pesawaran", District: "Gedong Tataan"},
		{Host: "rsudam.lampungprov.go.id", Name: "RSUD Abdul Moeloek", District: "Kedaton"},
		{Host: "poltekkes-tjk.ac.id", Name: "Poltekkes Tanjungkarang", District: "Kedaton"},
		{Host: "ubl.ac.id", Name: "Universitas Bandar Lampung", District: "Kedaton"},
		{Host: "teknokrat.ac.id", Name: "Universitas Teknokrat", District: "Kedaton"},
	}
}
