package db

import "database/sql"

// Static catalog shown by the view components. Every statement is
// idempotent so a shared in-memory database can be initialised twice.
var catalogSeed = []string{
	`INSERT OR IGNORE INTO fish (id, name, scientific_name, category, difficulty, size, temperature, ph, origin, image, description, lifespan, tank_size, compatibility) VALUES
 (1, 'Ikan Cupang Crown Tail', 'Betta splendens', 'Air Tawar', 'Pemula', '5-7 cm', '24-28°C', '6.5-7.5', 'Thailand',
  'https://images.unsplash.com/photo-1728659328144-9b652a7acf3b?w=300&h=300&fit=crop',
  'Ikan cupang dengan sirip yang menyerupai mahkota, mudah dipelihara dan cocok untuk pemula.', '2-3 tahun', '10-20 liter', 'Soliter'),
 (2, 'Ikan Neon Tetra', 'Paracheirodon innesi', 'Air Tawar', 'Pemula', '2-3 cm', '22-26°C', '6.0-7.0', 'Amerika Selatan',
  'https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=300&h=300&fit=crop',
  'Ikan kecil berwarna biru dan merah yang hidup berkelompok.', '3-5 tahun', '40+ liter', 'Kelompok'),
 (3, 'Ikan Discus', 'Symphysodon', 'Air Tawar', 'Mahir', '15-20 cm', '26-30°C', '6.0-6.5', 'Amazon',
  'https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=300&h=300&fit=crop',
  'Raja ikan hias air tawar dengan bentuk pipih dan warna yang indah.', '10-15 tahun', '200+ liter', 'Damai');`,

	`INSERT OR IGNORE INTO product_categories (id, position, name, count, icon) VALUES
 ('robot', 1, 'Robot Pembersih', 24, '🤖'),
 ('sensor', 2, 'Sensor IoT', 18, '📡'),
 ('filter', 3, 'Sistem Filter', 32, '⚙️'),
 ('feeder', 4, 'Auto Feeder', 15, '🔄'),
 ('light', 5, 'Lampu LED', 28, '💡'),
 ('controller', 6, 'Controller', 12, '🎮');`,

	`INSERT OR IGNORE INTO products (id, name, category, price, original_price, rating, reviews, image, badge) VALUES
 (1, 'Robot Pembersih Akuarium AquaClean Pro', 'Robot Pembersih', 2500000, 3000000, 4.9, 156,
  'https://images.unsplash.com/photo-1712512161600-cd767fcc37a1?w=1080', 'Best Seller'),
 (2, 'Sensor IoT Water Quality Monitor', 'Sensor IoT', 1200000, NULL, 4.8, 98,
  'https://images.unsplash.com/photo-1749570464328-52731ce35063?w=1080', 'Terbaru'),
 (3, 'Sistem Filter Canister Advanced', 'Sistem Filter', 1800000, 2200000, 4.7, 124,
  'https://images.unsplash.com/photo-1628859266125-8dc2adef1416?w=1080', 'Diskon'),
 (4, 'Auto Feeder Smart WiFi', 'Auto Feeder', 850000, NULL, 4.6, 78,
  'https://images.unsplash.com/photo-1655435252195-037f716ba6c9?w=1080', '');`,

	`INSERT OR IGNORE INTO forum_categories (id, position, name, description, topics, posts, color) VALUES
 ('freshwater', 1, 'Air Tawar', 'Diskusi seputar ikan air tawar', 1234, 8567, 'from-blue-500 to-cyan-500'),
 ('saltwater', 2, 'Air Laut', 'Diskusi ikan laut dan terumbu karang', 856, 4321, 'from-teal-500 to-blue-500'),
 ('aquascaping', 3, 'Aquascaping', 'Seni menata akuarium dan tanaman', 567, 2890, 'from-green-500 to-teal-500'),
 ('disease', 4, 'Konsultasi Penyakit', 'Tanya jawab masalah kesehatan ikan', 890, 5678, 'from-red-500 to-pink-500'),
 ('marketplace', 5, 'Jual Beli', 'Jual beli ikan dan peralatan', 2345, 12456, 'from-orange-500 to-yellow-500'),
 ('showcase', 6, 'Pamer Akuarium', 'Pamerkan setup akuarium Anda', 456, 3456, 'from-purple-500 to-pink-500');`,

	`INSERT OR IGNORE INTO forum_topics (id, title, author, category, replies, views, last_reply, avatar) VALUES
 (1, 'Ikan cupang saya tidak mau makan, kenapa ya?', 'BettaLover23', 'Konsultasi Penyakit', 12, 234, '2 jam lalu',
  'https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=40&h=40&fit=crop&crop=face'),
 (2, 'Setup aquascape natural style untuk pemula', 'AquascapeIndo', 'Aquascaping', 28, 567, '4 jam lalu',
  'https://images.unsplash.com/photo-1494790108755-2616b612b8fd?w=40&h=40&fit=crop&crop=face'),
 (3, 'Jual discus import berkualitas tinggi', 'DiscusMaster', 'Jual Beli', 15, 189, '6 jam lalu',
  'https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=40&h=40&fit=crop&crop=face');`,

	`INSERT OR IGNORE INTO guide_categories (id, position, name, description, articles, color) VALUES
 ('beginner', 1, 'Panduan Pemula', 'Mulai hobi ikan hias dari nol', 45, 'from-green-500 to-teal-500'),
 ('care', 2, 'Perawatan Harian', 'Tips merawat ikan setiap hari', 32, 'from-blue-500 to-cyan-500'),
 ('breeding', 3, 'Breeding & Reproduksi', 'Cara mengembangbiakkan ikan', 28, 'from-purple-500 to-pink-500'),
 ('aquascaping', 4, 'Aquascaping', 'Seni menata akuarium indah', 38, 'from-teal-500 to-green-500'),
 ('diy', 5, 'DIY & Projects', 'Project buatan sendiri', 22, 'from-orange-500 to-red-500'),
 ('troubleshooting', 6, 'Problem Solving', 'Solusi masalah umum', 35, 'from-red-500 to-pink-500');`,

	`INSERT OR IGNORE INTO guides (id, title, excerpt, category, read_time, author, publish_date, image, likes, comments) VALUES
 (1, 'Panduan Lengkap Setup Akuarium Pertama',
  'Semua yang perlu Anda ketahui untuk memulai hobi ikan hias, dari memilih akuarium hingga ikan pertama.',
  'Panduan Pemula', '15 menit', 'Dr. Ikan Sehat', '2 hari lalu',
  'https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=400&h=250&fit=crop', 245, 32),
 (2, 'Teknik Aquascaping Natural Style untuk Pemula',
  'Pelajari cara membuat aquascape natural yang indah dengan teknik dan tanaman yang tepat.',
  'Aquascaping', '12 menit', 'Aquascape Master', '4 hari lalu',
  'https://images.unsplash.com/photo-1646022112212-3538b61f74dc?w=400&h=250&fit=crop', 189, 28),
 (3, 'Cara Breeding Ikan Cupang yang Benar',
  'Step by step mengembangbiakkan ikan cupang dari persiapan hingga merawat burayak.',
  'Breeding & Reproduksi', '20 menit', 'Betta Breeder Pro', '1 minggu lalu',
  'https://images.unsplash.com/photo-1728659328144-9b652a7acf3b?w=400&h=250&fit=crop', 312, 45);`,

	`INSERT OR IGNORE INTO articles (id, title, category, image, author, read_time, likes) VALUES
 (1, 'Cara Merawat Ikan Cupang untuk Pemula', 'Panduan Pemula',
  'https://images.unsplash.com/photo-1728659328144-9b652a7acf3b?w=1080', 'Dr. Ikan Sehat', '5 menit', 245),
 (2, 'Aquascaping: Seni Menata Akuarium', 'Desain Akuarium',
  'https://images.unsplash.com/photo-1646022112212-3538b61f74dc?w=1080', 'Aquascape Indo', '8 menit', 189),
 (3, 'Mengatasi Penyakit Bintik Putih pada Ikan', 'Kesehatan Ikan',
  'https://images.unsplash.com/photo-1744366071536-7c0c536962a0?w=1080', 'Fish Health Pro', '6 menit', 312);`,

	`INSERT OR IGNORE INTO devices (id, position, name, status, last_update, battery_level) VALUES
 ('main', 1, 'Sensor Utama', 'online', '2 detik lalu', 95),
 ('robot', 2, 'Robot Pembersih', 'online', '5 detik lalu', 78),
 ('filter', 3, 'Sistem Filter', 'online', '1 detik lalu', NULL),
 ('light', 4, 'Lampu Akuarium', 'online', '3 detik lalu', NULL),
 ('feeder', 5, 'Auto Feeder', 'warning', '2 menit lalu', 25);`,

	`INSERT OR IGNORE INTO cleaning_schedules (id, day, time, type, enabled) VALUES
 (1, 'Senin', '08:00', 'Pembersihan Dasar', 1),
 (2, 'Rabu', '08:00', 'Pembersihan Menyeluruh', 1),
 (3, 'Jumat', '08:00', 'Pembersihan Dasar', 1),
 (4, 'Minggu', '10:00', 'Maintenance Lengkap', 0);`,

	`INSERT OR IGNORE INTO aquarium_controls (id, auto_mode, robot_active, light_intensity, filter_speed, updated_at) VALUES
 (1, 1, 0, 75, 60, CURRENT_TIMESTAMP);`,

	`INSERT OR IGNORE INTO admin_users (id, name, email, role, status, join_date) VALUES
 (1, 'Ahmad Fauzi', 'ahmad@email.com', 'member', 'active', '2024-01-15'),
 (2, 'Siti Nurhaliza', 'siti@email.com', 'member', 'active', '2024-01-14'),
 (3, 'Budi Setiawan', 'budi@email.com', 'member', 'suspended', '2024-01-13');`,

	`INSERT OR IGNORE INTO admin_posts (id, title, author, category, status, date) VALUES
 (1, 'Tips Merawat Ikan Cupang Hias', 'Ahmad Fauzi', 'Panduan', 'published', '2024-01-15'),
 (2, 'Penyakit Jamur pada Ikan Koi', 'Dr. Aqua', 'Kesehatan', 'pending', '2024-01-15'),
 (3, 'Setup Aquarium Nano Tank', 'Siti Nurhaliza', 'Tutorial', 'published', '2024-01-14');`,

	`INSERT OR IGNORE INTO pending_products (id, name, seller, price, status) VALUES
 (1, 'Filter Canister 1000L/H', 'AquaShop Jakarta', 850000, 'pending'),
 (2, 'LED Aquarium RGB 60cm', 'Toko Ikan Hias', 275000, 'pending'),
 (3, 'Substrat Soil Premium 5kg', 'Aquatic Store', 125000, 'pending');`,
}

func seedCatalog(db *sql.DB) error {
	return inTx(db, "seed", catalogSeed)
}
