package main

import "acmedash/internal/model"

// Demo fixtures. Invoice CustomerID values refer to the customers below by
// their insertion order (IDs are assigned 1..n on a fresh database).

type seedUser struct {
	Name     string
	Email    string
	Password string
}

var users = []seedUser{
	{Name: "Admin User", Email: "admin@acme.dev", Password: "123456"},
}

var customers = []model.Customer{
	{Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	{Name: "Emil Kowalski", Email: "emil@kowalski.com", ImageURL: "/customers/emil-kowalski.png"},
	{Name: "Hector Simpson", Email: "hector@simpson.com", ImageURL: "/customers/hector-simpson.png"},
	{Name: "Steven Tey", Email: "steven@tey.com", ImageURL: "/customers/steven-tey.png"},
	{Name: "Steph Dietz", Email: "steph@dietz.com", ImageURL: "/customers/steph-dietz.png"},
}

var invoices = []model.Invoice{
	{CustomerID: 1, Amount: 15795, Status: model.InvoiceStatusPending, Date: "2022-12-06"},
	{CustomerID: 2, Amount: 20348, Status: model.InvoiceStatusPending, Date: "2022-11-14"},
	{CustomerID: 5, Amount: 3040, Status: model.InvoiceStatusPaid, Date: "2022-10-29"},
	{CustomerID: 4, Amount: 44800, Status: model.InvoiceStatusPaid, Date: "2023-09-10"},
	{CustomerID: 6, Amount: 34577, Status: model.InvoiceStatusPending, Date: "2023-08-05"},
	{CustomerID: 8, Amount: 54246, Status: model.InvoiceStatusPending, Date: "2023-07-16"},
	{CustomerID: 1, Amount: 666, Status: model.InvoiceStatusPending, Date: "2023-06-27"},
	{CustomerID: 4, Amount: 32545, Status: model.InvoiceStatusPaid, Date: "2023-06-09"},
	{CustomerID: 7, Amount: 1250, Status: model.InvoiceStatusPaid, Date: "2023-06-17"},
	{CustomerID: 9, Amount: 8546, Status: model.InvoiceStatusPaid, Date: "2023-06-07"},
	{CustomerID: 3, Amount: 500, Status: model.InvoiceStatusPaid, Date: "2023-08-19"},
	{CustomerID: 10, Amount: 8945, Status: model.InvoiceStatusPaid, Date: "2023-06-03"},
	{CustomerID: 2, Amount: 1000, Status: model.InvoiceStatusPaid, Date: "2022-06-05"},
}

var revenue = []model.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}
