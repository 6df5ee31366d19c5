package seed

import "detailing-platform/internal/entities"

func seedUsers() []entities.User {
	return []entities.User{
		{
			ID: "emp1", Role: entities.RoleEmployer, Email: "autoshine@test.com", Password: "123456",
			Name: "Ivan Petrov", Phone: "+7 (495) 123-45-67", City: "Moscow",
			CompanyName: "AutoShine Studio", INN: "7701234567", CompanyType: "Detailing studio",
			Address: "Lomonosovsky prospekt 25", District: "South-West",
			Description: "Premium detailing studio with 10 years of experience.",
			Services:    []string{"Body polishing", "Ceramic coating", "PPF wrapping", "Interior dry-cleaning", "Tinting"},
			WorkingHours: "Mon-Sun: 9:00-21:00", SubscriptionPlan: entities.PlanPro,
			SubscriptionExpiry: "2027-12-31", SubAccounts: []entities.SubAccount{},
			CreatedAt: ts("2024-01-15T10:00:00Z"), IsVerified: true, Rating: 4.9, ReviewCount: 234, Favorites: []string{},
		},
		{
			ID: "emp2", Role: entities.RoleEmployer, Email: "cleancar@test.com", Password: "123456",
			Name: "Petr Moiseev", Phone: "+7 (812) 987-65-43", City: "Saint Petersburg",
			CompanyName: "CleanCar Express", INN: "7801234567", CompanyType: "Car wash",
			Address: "Nevsky prospekt 114", District: "Nevsky",
			Description: "Express car wash chain with fast service.",
			Services:    []string{"Touchless wash", "Hand wash", "Express polishing"},
			WorkingHours: "24/7", SubscriptionPlan: entities.PlanBasic,
			SubscriptionExpiry: "2027-06-30", SubAccounts: []entities.SubAccount{},
			CreatedAt: ts("2024-03-20T10:00:00Z"), IsVerified: true, Rating: 4.5, ReviewCount: 567, Favorites: []string{},
		},
		{
			ID: "emp3", Role: entities.RoleEmployer, Email: "premium@test.com", Password: "123456",
			Name: "Artem Nikolaev", Phone: "+7 (495) 555-00-11", City: "Moscow",
			CompanyName: "Premium Detail", INN: "7702345678", CompanyType: "Detailing center",
			Address: "Tverskaya 15/2", District: "Central",
			Description: "Exclusive detailing center for premium and luxury cars.",
			Services:    []string{"Full detailing", "Polishing", "Ceramic", "PPF", "Dry-cleaning", "PDR"},
			WorkingHours: "Mon-Sat: 10:00-20:00", SubscriptionPlan: entities.PlanPremium,
			SubscriptionExpiry: "2027-12-31", SubAccounts: []entities.SubAccount{},
			CreatedAt: ts("2024-02-10T10:00:00Z"), IsVerified: true, Rating: 5.0, ReviewCount: 89, Favorites: []string{},
		},
		{
			ID: "spec1", Role: entities.RoleSpecialist, Email: "alex@test.com", Password: "123456",
			Name: "Alexey Kuznetsov", Phone: "+7 (999) 111-22-33", City: "Moscow",
			Specialization: "Master polisher", Experience: "5 years",
			Skills:      []string{"Body polishing", "Ceramic coating", "Paintwork restoration"},
			IsCertified: true, CertificateNumber: "UC-2025-001",
			Status: entities.SpecialistSearching, AvailableForGigs: true, Portfolio: []entities.PortfolioItem{},
			ResumeText: "Experienced polisher, previously at Premium Detail.",
			CreatedAt:  ts("2024-05-01T10:00:00Z"), IsVerified: true, Rating: 4.9, ReviewCount: 45, Favorites: []string{},
		},
		{
			ID: "spec2", Role: entities.RoleSpecialist, Email: "dmitry@test.com", Password: "123456",
			Name: "Dmitry Volkov", Phone: "+7 (999) 222-33-44", City: "Saint Petersburg",
			Specialization: "All-round detailer", Experience: "7 years",
			Skills:      []string{"PPF", "Ceramic", "Polishing", "Dry-cleaning"},
			IsCertified: true, CertificateNumber: "UC-2025-002",
			Status: entities.SpecialistSearching, AvailableForGigs: true, Portfolio: []entities.PortfolioItem{},
			ResumeText: "Full-cycle detailer.",
			CreatedAt:  ts("2024-04-15T10:00:00Z"), IsVerified: true, Rating: 5.0, ReviewCount: 32, Favorites: []string{},
		},
		{
			ID: "spec3", Role: entities.RoleSpecialist, Email: "mikhail@test.com", Password: "123456",
			Name: "Mikhail Sokolov", Phone: "+7 (999) 333-44-55", City: "Moscow",
			Specialization: "Car washer", Experience: "2 years",
			Skills:      []string{"Touchless wash", "Interior dry-cleaning", "Polishing"},
			IsCertified: false, Status: entities.SpecialistOpen, AvailableForGigs: true, Portfolio: []entities.PortfolioItem{},
			CreatedAt: ts("2024-08-01T10:00:00Z"), IsVerified: true, Rating: 4.5, ReviewCount: 12, Favorites: []string{},
		},
		{
			ID: "client1", Role: entities.RoleClient, Email: "client@test.com", Password: "123456",
			Name: "Vladimir Orlov", Phone: "+7 (999) 555-66-77", City: "Moscow",
			CreatedAt: ts("2024-06-01T10:00:00Z"), IsVerified: true, Rating: 0, ReviewCount: 0,
			Favorites: []string{"emp1", "emp3"},
		},
		{
			ID: "sup1", Role: entities.RoleSupplier, Email: "koch@test.com", Password: "123456",
			Name: "Koch Chemie Russia", Phone: "+7 (495) 800-00-01", City: "Moscow",
			CompanyName: "Koch Chemie Russia", Category: "Car chemicals",
			Products: []string{"Shampoos", "Polishes", "Protective coatings", "Dry-cleaning agents"},
			MinOrder: "from 50 000 ₽", Discount: "up to 30% on collective purchases",
			Description: "Official Koch Chemie distributor in Russia.",
			CreatedAt:   ts("2024-01-01T10:00:00Z"), IsVerified: true, Rating: 4.8, ReviewCount: 156, Favorites: []string{},
		},
	}
}

func seedVacancies() []entities.Vacancy {
	return []entities.Vacancy{
		{
			ID: "vac1", EmployerID: "emp1", CompanyName: "AutoShine Studio",
			Title: "Master polisher", City: "Moscow", District: "South-West",
			Salary: "from 80 000 ₽", Schedule: "5/2, 9:00 to 20:00", Experience: "2+ years",
			Description:  "Experienced master polisher wanted for premium cars.",
			Requirements: []string{"2+ years of polishing", "Knows Koch and Meguiar's products", "Attention to detail"},
			IsHot:        true, IsVerified: true, Status: entities.VacancyActive, CreatedAt: ts("2026-02-19T08:00:00Z"),
			Applications: []entities.Application{
				{
					ID: "app1", VacancyID: "vac1", SpecialistID: "spec1", SpecialistName: "Alexey Kuznetsov",
					Message: "Hello! I have 5 years of polishing experience and a certificate.",
					Status:  entities.ApplicationPending, CreatedAt: ts("2026-02-19T09:00:00Z"),
				},
			},
		},
		{
			ID: "vac2", EmployerID: "emp2", CompanyName: "CleanCar Express",
			Title: "Car washer", City: "Saint Petersburg", District: "Nevsky",
			Salary: "from 50 000 ₽", Schedule: "Shifts 2/2", Experience: "no experience",
			Description:  "Washers wanted for a new location. Training covered by the company.",
			Requirements: []string{"Responsible", "Physically fit", "Willing to learn"},
			IsHot:        false, IsVerified: true, Status: entities.VacancyActive, CreatedAt: ts("2026-02-18T14:00:00Z"),
			Applications: []entities.Application{},
		},
		{
			ID: "vac3", EmployerID: "emp3", CompanyName: "Premium Detail",
			Title: "All-round detailer", City: "Moscow", District: "Central",
			Salary: "from 120 000 ₽", Schedule: "5/2, flexible hours", Experience: "3+ years",
			Description:  "Detailer with PPF and ceramic coating experience wanted.",
			Requirements: []string{"PPF wrapping experience", "Ceramic application skills", "Certificate is a plus"},
			IsHot:        true, IsVerified: true, Status: entities.VacancyActive, CreatedAt: ts("2026-02-17T10:00:00Z"),
			Applications: []entities.Application{},
		},
	}
}

func seedGigs() []entities.Gig {
	return []entities.Gig{
		{
			ID: "gig1", AuthorID: "emp1", AuthorName: "AutoShine Studio", Type: entities.RoleEmployer,
			Title: "Washer for one day", City: "Moscow", District: "South-West",
			Date: "Tomorrow, 10:00-21:00", Pay: "3 500 ₽",
			Description: "Urgently need a washer for a shift, an employee did not show up.",
			Urgent:      true, Status: entities.GigActive, CreatedAt: ts("2026-02-19T07:00:00Z"),
			Responses: []entities.GigResponse{},
		},
		{
			ID: "gig2", AuthorID: "spec1", AuthorName: "Alexey Kuznetsov", Type: entities.RoleSpecialist,
			Title: "Available for side work - polishing", City: "Moscow", District: "Any",
			Date: "Free this Friday", Pay: "Negotiable",
			Description: "Master polisher with 5 years of experience. Certified.",
			Urgent:      false, Status: entities.GigActive, CreatedAt: ts("2026-02-19T06:00:00Z"),
			Responses: []entities.GigResponse{},
		},
	}
}

func seedOrders() []entities.ClientOrder {
	return []entities.ClientOrder{
		{
			ID: "ord1", ClientID: "client1", ClientName: "Vladimir Orlov",
			Service: "Full wash + interior dry-cleaning", City: "Moscow", District: "South-West",
			PreferredDate: "22 February 2026, 14:00", Budget: "from 5 000 ₽",
			Description: "Need a full body wash and interior dry-cleaning. Toyota Camry 2023.",
			CarType:     "Toyota Camry 2023", Status: entities.OrderActive,
			CreatedAt: ts("2026-02-19T10:00:00Z"), Responses: []entities.OrderResponse{},
		},
		{
			ID: "ord2", ClientID: "client1", ClientName: "Vladimir Orlov",
			Service: "Body polishing + ceramic", City: "Moscow", District: "Central",
			PreferredDate: "25 February 2026", Budget: "up to 30 000 ₽",
			Description: "BMW X5 2024, black. Lots of small scratches. Polishing plus ceramic.",
			CarType:     "BMW X5 2024", Status: entities.OrderActive,
			CreatedAt: ts("2026-02-19T08:00:00Z"), Responses: []entities.OrderResponse{},
		},
	}
}

func seedPromos() []entities.Promo {
	return []entities.Promo{
		{
			ID: "promo1", CreatorID: "emp1", CompanyName: "CoffeePoint", Partner: "CoffeePoint", Category: "Cafe",
			Title: "15% off coffee", Description: "Show the promo code in any CoffeePoint cafe.",
			Discount: "15%", Code: "DETAIL15", ValidUntil: "2026-03-31", MaxUses: 100,
			IsActive: true, IsExclusive: true, UsedBy: []string{},
		},
		{
			ID: "promo2", CreatorID: "emp1", CompanyName: "AutoShine Studio", Partner: "AutoShine Studio", Category: "Car wash",
			Title: "Every 5th wash free", Description: "For registered users.",
			Discount: "Free", Code: "SHINE5FREE", ValidUntil: "2026-12-31", MaxUses: 50,
			IsActive: true, IsExclusive: false, UsedBy: []string{},
		},
	}
}

func seedPurchases() []entities.CollectivePurchase {
	return []entities.CollectivePurchase{
		{
			ID: "cp1", SupplierID: "sup1", SupplierName: "Koch Chemie Russia",
			Product: "NanoMagic shampoo 1L", Description: "Professional shampoo for touchless washing.",
			TargetVolume: 100, CurrentVolume: 73, UnitPrice: "450 ₽", RetailPrice: "650 ₽",
			Deadline: "2026-02-28",
			Participants: []entities.PurchaseParticipant{
				{UserID: "emp1", UserName: "AutoShine Studio", Quantity: 30, JoinedAt: ts("2026-02-10T10:00:00Z")},
				{UserID: "emp2", UserName: "CleanCar Express", Quantity: 25, JoinedAt: ts("2026-02-11T10:00:00Z")},
				{UserID: "emp3", UserName: "Premium Detail", Quantity: 18, JoinedAt: ts("2026-02-12T10:00:00Z")},
			},
			Status: entities.PurchaseActive,
		},
	}
}

func seedEnrollments() []entities.TrainingEnrollment {
	completed1 := ts("2025-01-15T10:00:00Z")
	completed2 := ts("2025-01-15T10:00:00Z")
	return []entities.TrainingEnrollment{
		{
			ID: "te1", UserID: "spec1", UserName: "Alexey Kuznetsov", Course: "All-round detailer",
			Status: entities.EnrollmentCompleted, EnrolledAt: ts("2024-12-01T10:00:00Z"),
			CompletedAt: &completed1, CertificateNumber: "UC-2025-001",
		},
		{
			ID: "te2", UserID: "spec2", UserName: "Dmitry Volkov", Course: "Master polisher",
			Status: entities.EnrollmentCompleted, EnrolledAt: ts("2024-12-01T10:00:00Z"),
			CompletedAt: &completed2, CertificateNumber: "UC-2025-002",
		},
	}
}

func seedChatMessages() []entities.ChatMessage {
	return []entities.ChatMessage{
		{
			ID: "cm1", ChatID: 2, AuthorID: "spec1", AuthorName: "Alexey K.", AuthorRole: entities.RoleSpecialist,
			Text: "Hi all! Has anyone tried the new Koch A1100 compound?", CreatedAt: ts("2026-02-19T09:00:00Z"),
		},
		{
			ID: "cm2", ChatID: 2, AuthorID: "spec2", AuthorName: "Dmitry V.", AuthorRole: entities.RoleSpecialist,
			Text: "Yes, great compound. Removes holograms well.", CreatedAt: ts("2026-02-19T09:05:00Z"),
		},
		{
			ID: "cm3", ChatID: 7, AuthorID: "client1", AuthorName: "Vladimir", AuthorRole: entities.RoleClient,
			Text: "How often should a ceramic coating be renewed?", CreatedAt: ts("2026-02-19T10:00:00Z"),
		},
		{
			ID: "cm4", ChatID: 7, AuthorID: "spec1", AuthorName: "Alexey K.", AuthorRole: entities.RoleSpecialist,
			Text: "Depends on the brand. On average every 1-2 years with proper care.", CreatedAt: ts("2026-02-19T10:10:00Z"),
		},
	}
}

func seedConversations() []entities.Conversation {
	return []entities.Conversation{
		{
			ID:               "conv1",
			ParticipantIDs:   []string{"emp1", "spec1"},
			ParticipantNames: []string{"AutoShine Studio", "Alexey Kuznetsov"},
			ParticipantRoles: []entities.UserRole{entities.RoleEmployer, entities.RoleSpecialist},
			LastMessage:      "Hello! We have reviewed your resume.",
			LastMessageAt:    ts("2026-02-19T14:35:00Z"),
			UnreadCount:      map[string]int{"emp1": 0, "spec1": 1},
		},
	}
}

func seedMessages() []entities.Message {
	return []entities.Message{
		{
			ID: "msg1", ConversationID: "conv1", SenderID: "emp1", SenderName: "AutoShine Studio",
			ReceiverID: "spec1", Text: "Hello! We have reviewed your resume and would like to invite you to an interview.",
			CreatedAt: ts("2026-02-19T14:35:00Z"), Read: false,
		},
	}
}
