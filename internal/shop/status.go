package shop

// Status pesanan yang valid; PesananInput.Status divalidasi terhadap daftar ini.
const (
	StatusPending    = "pending"
	StatusDiproses   = "diproses"
	StatusDikirim    = "dikirim"
	StatusSelesai    = "selesai"
	StatusDibatalkan = "dibatalkan"
)
