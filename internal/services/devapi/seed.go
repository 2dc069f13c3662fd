package devapi

import "github.com/louisbranch/faqdesk/internal/faq"

// SeedEntry is one demo record loaded by the seed endpoint.
type SeedEntry struct {
	Category     faq.Category
	Question     string
	Answer       string
	Translations *faq.Translations
}

func text(question, answer string) *faq.Text {
	return &faq.Text{Question: question, Answer: answer}
}

// DemoEntries returns the records loaded by the seed endpoint.
func DemoEntries() []SeedEntry {
	return []SeedEntry{
		{
			Category: faq.CategoryMassage,
			Question: "Do I need to book in advance?",
			Answer:   "Walk-ins are welcome, but booking a day ahead guarantees your preferred time.",
			Translations: &faq.Translations{
				TH: text("ต้องจองล่วงหน้าไหม", "รับลูกค้า walk-in แต่การจองล่วงหน้าหนึ่งวันจะได้เวลาที่ต้องการ"),
				ZH: text("需要提前预约吗？", "欢迎直接到店，但提前一天预约可以确保您想要的时间。"),
				RU: text("Нужно ли бронировать заранее?", "Можно прийти без записи, но бронь за день гарантирует удобное время."),
			},
		},
		{
			Category: faq.CategoryMassage,
			Question: "How long is a traditional massage session?",
			Answer:   "Sessions run 60, 90 or 120 minutes.",
			Translations: &faq.Translations{
				TH: text("นวดแผนไทยใช้เวลานานเท่าไร", "มีให้เลือก 60, 90 หรือ 120 นาที"),
				ZH: text("传统按摩需要多长时间？", "有60、90或120分钟可选。"),
				RU: text("Сколько длится традиционный массаж?", "Сеансы длятся 60, 90 или 120 минут."),
			},
		},
		{
			Category: faq.CategoryMassage,
			Question: "Can I pay by card?",
			Answer:   "Yes, we accept major credit cards and QR payments.",
		},
		{
			Category: faq.CategoryRental,
			Question: "What documents do I need to rent a scooter?",
			Answer:   "A passport and a valid driving licence that covers motorcycles.",
			Translations: &faq.Translations{
				TH: text("เช่ารถต้องใช้เอกสารอะไรบ้าง", "หนังสือเดินทางและใบขับขี่รถจักรยานยนต์ที่ยังไม่หมดอายุ"),
				ZH: text("租摩托车需要什么证件？", "护照和有效的摩托车驾照。"),
				RU: text("Какие документы нужны для аренды скутера?", "Паспорт и действующие права категории A."),
			},
		},
		{
			Category: faq.CategoryRental,
			Question: "Is a helmet included?",
			Answer:   "Two helmets are included with every rental at no extra cost.",
			Translations: &faq.Translations{
				ZH: text("包含头盔吗？", "每次租赁免费提供两个头盔。"),
				RU: text("Шлем входит в стоимость?", "Два шлема входят в каждую аренду бесплатно."),
			},
		},
		{
			Category: faq.CategoryRental,
			Question: "Is there a deposit?",
			Answer:   "A refundable deposit of 3,000 THB is taken at pickup.",
		},
	}
}
