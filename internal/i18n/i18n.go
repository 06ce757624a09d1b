package i18n

// Lang selects which string table the UI renders with.
type Lang string

const (
	English    Lang = "en"
	Indonesian Lang = "id"
)

// Toggle flips between the two supported languages.
func Toggle(l Lang) Lang {
	if l == English {
		return Indonesian
	}
	return English
}

// Table holds every user-facing string for one language.
type Table struct {
	// menu titles
	MenuHome     string
	MenuTxtImg   string
	MenuImgTrans string
	MenuRealFace string
	MenuSticker  string
	MenuLogo     string
	MenuProduct  string
	MenuComic    string
	MenuSmart    string
	MenuStyle    string
	MenuFashion  string
	MenuSketch   string
	MenuChar     string
	MenuLive     string
	MenuRecipe   string
	MenuChat     string

	// per-menu default prompts
	PromptTxtImg   string
	PromptImgTrans string
	PromptRealFace string
	PromptSticker  string
	PromptLogo     string
	PromptProduct  string
	PromptComic    string
	PromptSmart    string
	PromptStyle    string
	PromptSketch   string
	PromptChar     string
	PromptLive     string
	PromptRecipe   string

	// style category labels
	Family    string
	Wedding   string
	Official  string
	Pose      string
	Business  string
	Cinematic string

	// errors
	ErrQuota      string
	ErrQuotaChat  string
	ErrRefine     string
	ErrChat       string
	ErrCamera     string
	ErrOperation  string
	ErrExtract    string
	ErrSearch     string
	ErrNoAPIKey   string
	ErrReadFile   string
	ErrSaveResult string

	// misc UI
	Welcome    string
	Generate   string
	Transform  string
	Extract    string
	Visualize  string
	Analyzing  string
	Loading    string
	ResultIdle string
	Saved      string
}

var english = Table{
	MenuHome:     "Home",
	MenuTxtImg:   "Text to Image",
	MenuImgTrans: "Image Transform",
	MenuRealFace: "Photorealistic Portrait",
	MenuSticker:  "Sticker Design",
	MenuLogo:     "Logo Creator",
	MenuProduct:  "Product Mockup",
	MenuComic:    "Sequential Art",
	MenuSmart:    "Smart Editor",
	MenuStyle:    "Style Transfer",
	MenuFashion:  "Fashion Composite",
	MenuSketch:   "Sketch to Real",
	MenuChar:     "Character Lab",
	MenuLive:     "Live Visuals",
	MenuRecipe:   "Recipe Extractor",
	MenuChat:     "Creative Chat",

	PromptTxtImg:   "A cinematic photo of a futuristic city at golden hour, ultra detailed.",
	PromptImgTrans: "Transform this photo into a professional studio portrait with soft lighting.",
	PromptRealFace: "Professional studio portrait, soft key light, neutral background.",
	PromptSticker:  "A cute die-cut sticker with bold outlines and vibrant colors, white border.",
	PromptLogo:     "A minimalist modern logo, flat vector style, clean geometry.",
	PromptProduct:  "A premium product mockup on a marble surface with studio lighting.",
	PromptComic:    "A dynamic comic panel, bold ink lines, dramatic perspective.",
	PromptSmart:    "Remove the background and enhance lighting on the main subject.",
	PromptStyle:    "Repaint this image in the style of an impressionist oil painting.",
	PromptSketch:   "Turn this sketch into a photorealistic render, natural materials.",
	PromptChar:     "A full-body character concept, consistent design, neutral pose.",
	PromptLive:     "What does the tallest building in the world look like today?",
	PromptRecipe:   "Paste a cooking story or recipe text here.",

	Family:    "Family",
	Wedding:   "Wedding",
	Official:  "Official",
	Pose:      "Model Pose",
	Business:  "Business",
	Cinematic: "Cinematic",

	ErrQuota:      "API Quota Exceeded. Please wait a few minutes before trying again.",
	ErrQuotaChat:  "Chat Quota Exceeded.",
	ErrRefine:     "Refinement failed",
	ErrChat:       "Chat failed",
	ErrCamera:     "Camera access denied or not available",
	ErrOperation:  "Operation failed",
	ErrExtract:    "Extraction failed",
	ErrSearch:     "Search failed",
	ErrNoAPIKey:   "API key not configured. Set it in Settings or via GEMINI_API_KEY.",
	ErrReadFile:   "Could not read image file",
	ErrSaveResult: "Could not save the result",

	Welcome:    "Welcome to Magic Photo Studio",
	Generate:   "Generate",
	Transform:  "Transform",
	Extract:    "Extract Recipe",
	Visualize:  "Visualize",
	Analyzing:  "Analyzing...",
	Loading:    "Composing pixels...",
	ResultIdle: "The canvas is ready",
	Saved:      "Saved",
}

var indonesian = Table{
	MenuHome:     "Beranda",
	MenuTxtImg:   "Teks ke Gambar",
	MenuImgTrans: "Transformasi Gambar",
	MenuRealFace: "Potret Fotorealistik",
	MenuSticker:  "Desain Stiker",
	MenuLogo:     "Pembuat Logo",
	MenuProduct:  "Mockup Produk",
	MenuComic:    "Seni Sekuensial",
	MenuSmart:    "Editor Pintar",
	MenuStyle:    "Transfer Gaya",
	MenuFashion:  "Komposit Fesyen",
	MenuSketch:   "Sketsa ke Nyata",
	MenuChar:     "Lab Karakter",
	MenuLive:     "Visualisasi Langsung",
	MenuRecipe:   "Ekstraktor Resep",
	MenuChat:     "Obrolan Kreatif",

	PromptTxtImg:   "Foto sinematik kota futuristik saat golden hour, sangat detail.",
	PromptImgTrans: "Ubah foto ini menjadi potret studio profesional dengan pencahayaan lembut.",
	PromptRealFace: "Potret studio profesional, key light lembut, latar belakang netral.",
	PromptSticker:  "Stiker die-cut lucu dengan garis tebal dan warna cerah, pinggiran putih.",
	PromptLogo:     "Logo modern minimalis, gaya vektor datar, geometri bersih.",
	PromptProduct:  "Mockup produk premium di permukaan marmer dengan pencahayaan studio.",
	PromptComic:    "Panel komik dinamis, garis tinta tebal, perspektif dramatis.",
	PromptSmart:    "Hapus latar belakang dan tingkatkan pencahayaan pada subjek utama.",
	PromptStyle:    "Lukis ulang gambar ini dengan gaya lukisan cat minyak impresionis.",
	PromptSketch:   "Ubah sketsa ini menjadi render fotorealistik, material alami.",
	PromptChar:     "Konsep karakter seluruh badan, desain konsisten, pose netral.",
	PromptLive:     "Seperti apa gedung tertinggi di dunia hari ini?",
	PromptRecipe:   "Tempel teks resep atau cerita tentang memasak di sini.",

	Family:    "Keluarga",
	Wedding:   "Pernikahan",
	Official:  "Resmi",
	Pose:      "Pose Model",
	Business:  "Bisnis",
	Cinematic: "Sinematik",

	ErrQuota:      "Kuota API Terlampaui. Mohon tunggu beberapa menit atau hubungi Admin.",
	ErrQuotaChat:  "Kuota Obrolan Terlampaui.",
	ErrRefine:     "Penyempurnaan gagal",
	ErrChat:       "Obrolan gagal",
	ErrCamera:     "Akses kamera ditolak atau tidak tersedia",
	ErrOperation:  "Operasi gagal",
	ErrExtract:    "Ekstraksi gagal",
	ErrSearch:     "Pencarian gagal",
	ErrNoAPIKey:   "Kunci API belum diatur. Atur di Pengaturan atau lewat GEMINI_API_KEY.",
	ErrReadFile:   "Tidak dapat membaca berkas gambar",
	ErrSaveResult: "Tidak dapat menyimpan hasil",

	Welcome:    "Selamat datang di Magic Photo Studio",
	Generate:   "Buat",
	Transform:  "Transformasi",
	Extract:    "Ekstrak Resep",
	Visualize:  "Visualisasikan",
	Analyzing:  "Menganalisis...",
	Loading:    "Menyusun pixel...",
	ResultIdle: "Kanvas fotografi siap",
	Saved:      "Tersimpan",
}

// For returns the string table for lang, defaulting to Indonesian (the
// original product shipped with Indonesian as the default language).
func For(lang Lang) *Table {
	if lang == English {
		return &english
	}
	return &indonesian
}
