// Package seed loads the initial admin account and the Torre Lapillo
// reference catalogue into an empty database.
package seed

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"lapillo/config"
	"lapillo/db"
	"lapillo/models"
	"lapillo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Handler exposes seeding over HTTP for first deploys without shell access.
func Handler(d *db.Database, cfg *config.Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		count, err := d.Admins.CountDocuments(r.Context(), bson.M{"email": cfg.SeedAdminEmail})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to seed database")
			return
		}
		if count > 0 {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Database already seeded"})
			return
		}
		if err := Run(r.Context(), d, cfg); err != nil {
			log.Printf("seed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to seed database")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Database seeded successfully"})
	}
}

// Run is idempotent: the presence of the seed admin marks the database as
// already populated and everything else is skipped.
func Run(ctx context.Context, d *db.Database, cfg *config.Config) error {
	count, err := d.Admins.CountDocuments(ctx, bson.M{"email": cfg.SeedAdminEmail})
	if err != nil {
		return fmt.Errorf("seed: check admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}
	admin := models.AdminUser{
		ID:           utils.GetUUID(),
		Email:        cfg.SeedAdminEmail,
		PasswordHash: string(hash),
		Name:         cfg.SeedAdminName,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := d.Admins.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("seed: insert admin: %w", err)
	}

	if err := insertProperty(ctx, d.Properties); err != nil {
		return err
	}
	for _, step := range []struct {
		name string
		fn   func(context.Context) error
	}{
		{"beaches", func(c context.Context) error { return insertMany(c, d.Beaches, beaches()) }},
		{"restaurants", func(c context.Context) error { return insertMany(c, d.Restaurants, restaurants()) }},
		{"experiences", func(c context.Context) error { return insertMany(c, d.Experiences, experiences()) }},
		{"rentals", func(c context.Context) error { return insertMany(c, d.Rentals, rentals()) }},
		{"map_info", func(c context.Context) error { return insertMany(c, d.MapInfo, mapInfo()) }},
		{"transports", func(c context.Context) error { return insertMany(c, d.Transports, transports()) }},
		{"nightlife_events", func(c context.Context) error { return insertMany(c, d.NightlifeEvents, nightlifeEvents()) }},
		{"local_events", func(c context.Context) error { return insertMany(c, d.LocalEvents, localEvents()) }},
		{"troubleshooting", func(c context.Context) error { return insertMany(c, d.Troubleshooting, troubleshooting()) }},
		{"supermarket", func(c context.Context) error {
			_, err := d.Supermarket.InsertOne(c, supermarket())
			return err
		}},
	} {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed: %s: %w", step.name, err)
		}
	}

	log.Printf("seed: database populated, admin %s created", cfg.SeedAdminEmail)
	return nil
}

func insertMany[T any](ctx context.Context, coll *mongo.Collection, items []T) error {
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}

func insertProperty(ctx context.Context, coll *mongo.Collection) error {
	prop := models.Property{
		ID:                   utils.GetUUID(),
		Name:                 "Casa Brezza",
		Slug:                 "casa-brezza",
		WifiName:             "CasaBrezzaWifi",
		WifiPassword:         "Benvenuti2024",
		CheckinTime:          "15:00 - 20:00",
		CheckinInstructions:  "Ritira le chiavi dalla cassetta di sicurezza accanto alla porta. Il codice ti sarà inviato via WhatsApp il giorno dell'arrivo.",
		CheckoutTime:         "Entro le 10:00",
		CheckoutInstructions: "Lascia le chiavi sul tavolo della cucina. Chiudi tutte le finestre e porta via i rifiuti nei bidoni condominiali.",
		HouseRules: []string{
			"Non fumare all'interno",
			"No feste o eventi",
			"Rispettare il silenzio dalle 23:00 alle 8:00",
			"Animali ammessi previo accordo",
			"Non superare il numero massimo di ospiti dichiarato",
		},
		HostName:  "Marco",
		HostPhone: "+393293236473",
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Emergenze", Phone: "112"},
			{Name: "Guardia Medica Porto Cesareo", Phone: "0833 569 111"},
		},
		FAQ: []models.FAQEntry{
			{Question: "Come funziona l'aria condizionata?", Answer: "Il telecomando è nel cassetto del comodino. Impostare max 24°C per un comfort ottimale."},
			{Question: "Dove butto la spazzatura?", Answer: "I bidoni differenziati sono nel cortile condominiale. Calendario raccolta sul frigorifero."},
			{Question: "C'è il parcheggio?", Answer: "Sì, posto auto privato nel cortile interno."},
		},
		ExtraServices: []models.ExtraService{
			{ID: utils.GetUUID(), Name: "Pulizia extra", Description: "Pulizia completa durante il soggiorno.", Price: "€30"},
			{ID: utils.GetUUID(), Name: "Cambio biancheria", Description: "Set completo lenzuola e asciugamani.", Price: "€15"},
			{ID: utils.GetUUID(), Name: "Colazione a domicilio", Description: "Cornetti caldi e caffè consegnati alle 8:30.", Price: "€12"},
		},
		ImageURL:  "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800",
		CreatedAt: time.Now().UTC(),
	}
	_, err := coll.InsertOne(ctx, prop)
	return err
}

func beaches() []models.Beach {
	return []models.Beach{
		{ID: utils.GetUUID(), Name: "Spiaggia di Torre Lapillo", Description: "La spiaggia principale del paese, sabbia fine e acque cristalline. Ideale per famiglie.", Distance: "300m", Category: "libera", MapURL: "https://maps.google.com/?q=40.2844,17.8573", ImageURL: "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800", IsRecommended: true},
		{ID: utils.GetUUID(), Name: "Lido Tabu", Description: "Stabilimento con tutti i comfort: lettini, ombrelloni, bar e ristorante. Perfetto per una giornata rilassante.", Distance: "400m", Category: "attrezzata", MapURL: "https://maps.google.com/?q=40.2850,17.8580", ImageURL: "https://images.unsplash.com/photo-1519046904884-53103b34b206?w=800", IsRecommended: true, HasSunbeds: true},
		{ID: utils.GetUUID(), Name: "Punta Prosciutto", Description: "Una delle spiagge più belle della Puglia. Sabbia bianchissima e mare caraibico.", Distance: "5 km", Category: "libera", MapURL: "https://maps.google.com/?q=40.2685,17.8039", ImageURL: "https://images.unsplash.com/photo-1473116763249-2faaef81ccda?w=800", IsRecommended: true},
		{ID: utils.GetUUID(), Name: "Lido Bahia", Description: "Stabilimento giovane e trendy con musica e aperitivi al tramonto.", Distance: "600m", Category: "giovani", MapURL: "https://maps.google.com/?q=40.2860,17.8590", ImageURL: "https://images.unsplash.com/photo-1520454974749-611b7248ffdb?w=800", HasSunbeds: true},
		{ID: utils.GetUUID(), Name: "Spiaggia di Porto Cesareo", Description: "Ampia spiaggia con fondali bassi, perfetta per i bambini.", Distance: "8 km", Category: "family", MapURL: "https://maps.google.com/?q=40.2640,17.8970", ImageURL: "https://images.unsplash.com/photo-1506953823976-52e1fdc0149a?w=800"},
	}
}

func restaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: utils.GetUUID(), Name: "Ristorante Da Cosimino", Description: "Cucina di mare tradizionale salentina. Specialità: frittura di paranza e spaghetti ai ricci.", Category: "pesce", Phone: "+390833565123", MapURL: "https://maps.google.com/?q=40.2845,17.8575", ImageURL: "https://images.unsplash.com/photo-1559339352-11d035aa65de?w=800", IsRecommended: true},
		{ID: utils.GetUUID(), Name: "Pizzeria Il Forno", Description: "Pizza napoletana cotta nel forno a legna. Impasto leggero e ingredienti di qualità.", Category: "pizzeria", Phone: "+390833565456", MapURL: "https://maps.google.com/?q=40.2848,17.8578", ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=800", IsRecommended: true},
		{ID: utils.GetUUID(), Name: "Braceria La Brace", Description: "Carni alla griglia di altissima qualità. Tagliata, fiorentina e grigliate miste.", Category: "carne", Phone: "+390833565789", MapURL: "https://maps.google.com/?q=40.2842,17.8572", ImageURL: "https://images.unsplash.com/photo-1544025162-d76694265947?w=800"},
		{ID: utils.GetUUID(), Name: "Bar del Corso", Description: "Colazioni con pasticciotto caldo, aperitivi al tramonto e cocktail serali.", Category: "colazione", Phone: "+390833565111", MapURL: "https://maps.google.com/?q=40.2846,17.8576", ImageURL: "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=800", IsRecommended: true},
		{ID: utils.GetUUID(), Name: "Trattoria Nonna Maria", Description: "Piatti della tradizione pugliese: orecchiette, fave e cicorie, parmigiana.", Category: "carne", Phone: "+390833565222", MapURL: "https://maps.google.com/?q=40.2843,17.8571", ImageURL: "https://images.unsplash.com/photo-1551183053-bf91a1d81141?w=800"},
	}
}

func experiences() []models.Experience {
	return []models.Experience{
		{ID: utils.GetUUID(), Name: "Gita in Barca alle Isole", Description: "Escursione alle isole di Porto Cesareo con snorkeling e pranzo a bordo.", Category: "barca", PriceInfo: "Da €45/persona", ContactPhone: "+393293236473", ImageURL: "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800", IsTop: true},
		{ID: utils.GetUUID(), Name: "Tour di Lecce Barocca", Description: "Visita guidata al centro storico di Lecce, la Firenze del Sud.", Category: "escursioni", PriceInfo: "Da €25/persona", ContactPhone: "+393293236473", ImageURL: "https://images.unsplash.com/photo-1534445867742-43195f401b6c?w=800", IsTop: true},
		{ID: utils.GetUUID(), Name: "Alberobello e Valle d'Itria", Description: "Escursione ai trulli patrimonio UNESCO. Visita a Locorotondo e Ostuni.", Category: "borghi", PriceInfo: "Da €40/persona", ContactPhone: "+393293236473", ImageURL: "https://images.unsplash.com/photo-1568797629192-789acf8e4df3?w=800", IsTop: true},
		{ID: utils.GetUUID(), Name: "Gallipoli by Night", Description: "Serata nella perla dello Ionio: cena, passeggiata e locali sul mare.", Category: "nightlife", PriceInfo: "Trasporto €15/persona", ContactPhone: "+393293236473", ImageURL: "https://images.unsplash.com/photo-1514214246283-d427a95c5d2f?w=800"},
		{ID: utils.GetUUID(), Name: "Diving e Snorkeling", Description: "Immersioni guidate nei fondali cristallini di Porto Cesareo.", Category: "barca", PriceInfo: "Da €60/persona", ContactPhone: "+393293236473", ImageURL: "https://images.unsplash.com/photo-1544551763-77ef2d0cfc6c?w=800"},
	}
}

func rentals() []models.Rental {
	return []models.Rental{
		{ID: utils.GetUUID(), Name: "Kit Spiaggia Completo", Description: "2 lettini, ombrellone, borsa frigo. Tutto il necessario per la spiaggia libera.", DailyPrice: "€15/giorno", Rules: "Riconsegna entro le 20:00. Responsabilità per danni.", ImageURL: "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800"},
		{ID: utils.GetUUID(), Name: "Bicicletta City", Description: "Bici da passeggio con cestino. Perfetta per esplorare Torre Lapillo.", DailyPrice: "€10/giorno", WeeklyPrice: "€55/settimana", Rules: "Casco incluso. Lucchetto fornito. Riconsegna entro le 21:00.", ImageURL: "https://images.unsplash.com/photo-1485965120184-e220f721d03e?w=800"},
		{ID: utils.GetUUID(), Name: "SUP - Stand Up Paddle", Description: "Tavola SUP gonfiabile con pagaia e giubbotto salvagente.", DailyPrice: "€20/giorno", Rules: "Solo per nuotatori esperti. Vietato con mare mosso.", ImageURL: "https://images.unsplash.com/photo-1526188717906-ab4a2f949f53?w=800"},
		{ID: utils.GetUUID(), Name: "Kayak Doppio", Description: "Kayak a due posti con pagaie e giubbotti.", DailyPrice: "€25/giorno", Rules: "Minimo 2 persone. Solo con mare calmo.", ImageURL: "https://images.unsplash.com/photo-1572111866787-bc7632c96e5f?w=800"},
		{ID: utils.GetUUID(), Name: "Set Snorkeling", Description: "Maschera, boccaglio e pinne. Taglie disponibili: S, M, L.", DailyPrice: "€8/giorno", Rules: "Risciacquare con acqua dolce dopo l'uso.", ImageURL: "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800"},
		{ID: utils.GetUUID(), Name: "Carrellino da Spiaggia", Description: "Carrello pieghevole per trasportare attrezzatura in spiaggia.", DailyPrice: "€5/giorno", Rules: "Carico massimo 30kg.", ImageURL: "https://images.unsplash.com/photo-1495954484750-af469f2f9be5?w=800"},
	}
}

func mapInfo() []models.MapInfo {
	return []models.MapInfo{
		{ID: utils.GetUUID(), Name: "Parcheggio Comunale", Description: "Parcheggio gratuito a 200m dalla spiaggia principale.", Category: "parcheggi", MapURL: "https://maps.google.com/?q=40.2840,17.8570", Icon: "car"},
		{ID: utils.GetUUID(), Name: "Parcheggio Lido Tabu", Description: "Parcheggio privato per clienti stabilimento. €5/giorno.", Category: "parcheggi", MapURL: "https://maps.google.com/?q=40.2852,17.8582", Icon: "car"},
		{ID: utils.GetUUID(), Name: "Farmacia Torre Lapillo", Description: "Aperta 9:00-13:00 / 17:00-21:00. Turni notturni a rotazione.", Category: "farmacia", MapURL: "https://maps.google.com/?q=40.2847,17.8577", Icon: "pill"},
		{ID: utils.GetUUID(), Name: "Guardia Medica Porto Cesareo", Description: "Servizio notturno e festivo. Tel: 0833 569 111", Category: "guardia_medica", MapURL: "https://maps.google.com/?q=40.2640,17.8970", Icon: "stethoscope"},
		{ID: utils.GetUUID(), Name: "Ospedale Vito Fazzi - Lecce", Description: "Pronto soccorso più vicino. 35 minuti in auto.", Category: "pronto_soccorso", MapURL: "https://maps.google.com/?q=40.3525,18.1765", Icon: "hospital"},
		{ID: utils.GetUUID(), Name: "Stazione FS Lecce", Description: "Stazione ferroviaria principale. Collegamenti per Bari e Roma.", Category: "stazioni", MapURL: "https://maps.google.com/?q=40.3534,18.1693", Icon: "train"},
		{ID: utils.GetUUID(), Name: "Porto di Gallipoli", Description: "Traghetti per isole e gite in barca.", Category: "porti", MapURL: "https://maps.google.com/?q=40.0558,17.9893", Icon: "anchor"},
	}
}

func transports() []models.Transport {
	return []models.Transport{
		{ID: utils.GetUUID(), Name: "Navetta Spiagge", Description: "Servizio navetta gratuito per le principali spiagge. Partenze ogni ora.", Category: "navette", ContactPhone: "+393293236473", PriceInfo: "Gratuito"},
		{ID: utils.GetUUID(), Name: "NCC Marco Transfer", Description: "Servizio taxi privato. Aeroporto Brindisi, stazioni, escursioni.", Category: "ncc", ContactPhone: "+393293236473", PriceInfo: "Da €50 aeroporto"},
		{ID: utils.GetUUID(), Name: "Gita Lecce & Otranto", Description: "Tour organizzato con guida. Partenza ore 9:00, rientro ore 18:00.", Category: "gite", ContactPhone: "+393293236473", PriceInfo: "€35/persona"},
		{ID: utils.GetUUID(), Name: "Gita Alberobello", Description: "Escursione ai trulli. Include visita guidata e tempo libero.", Category: "gite", ContactPhone: "+393293236473", PriceInfo: "€40/persona"},
	}
}

func nightlifeEvents() []models.NightlifeEvent {
	return []models.NightlifeEvent{
		{ID: utils.GetUUID(), Name: "Notte Salentina", Venue: "Riobo Gallipoli", Description: "Serata con DJ set sulla spiaggia, ingresso e navetta dal paese.", Date: "2025-08-14", Time: "23:00", PriceEntry: "€20", PriceWithTransport: "€30"},
		{ID: utils.GetUUID(), Name: "Sunset Party", Venue: "Lido Bahia", Description: "Aperitivo al tramonto con musica dal vivo.", Date: "2025-08-16", Time: "19:00", PriceEntry: "€10", PriceWithTransport: "€15"},
	}
}

func localEvents() []models.LocalEvent {
	return []models.LocalEvent{
		{ID: utils.GetUUID(), Name: "Sagra te lu Purpu", Description: "Sagra del polpo a Melendugno, specialità locali e musica popolare.", Date: "2025-08-12", Time: "20:00", Location: "Melendugno", Category: "sagra"},
		{ID: utils.GetUUID(), Name: "Notte della Taranta", Description: "Il grande concerto di pizzica a Melpignano.", Date: "2025-08-23", Time: "21:00", Location: "Melpignano", Category: "concerto"},
	}
}

func supermarket() models.Supermarket {
	return models.Supermarket{
		ID:          utils.GetUUID(),
		Name:        "Supermercato Sisa Torre Lapillo",
		Description: "Il supermercato di riferimento per la spesa quotidiana. Prodotti freschi locali, frutta e verdura del Salento.",
		Distance:    "200m",
		Address:     "Via della Chiesa 12, Torre Lapillo",
		Phone:       "+390833565333",
		MapURL:      "https://maps.google.com/?q=40.2849,17.8579",
		Images:      []string{"https://images.unsplash.com/photo-1578916171728-46686eac8d58?w=800"},
		Services: []models.SupermarketService{
			{Name: "Frutta e verdura", Description: "Prodotti freschi del territorio ogni mattina.", Icon: "apple"},
			{Name: "Pane fresco", Description: "Pane e frise dal forno di Porto Cesareo.", Icon: "bread"},
			{Name: "Gastronomia", Description: "Piatti pronti, salumi e formaggi pugliesi.", Icon: "cheese"},
			{Name: "Bancomat", Description: "Sportello ATM all'ingresso.", Icon: "credit-card"},
		},
		Hours: models.SupermarketHours{
			Weekdays: "8:00 - 13:00 / 16:30 - 21:00",
			Saturday: "8:00 - 21:00",
			Sunday:   "8:00 - 13:00",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func troubleshooting() []models.Troubleshooting {
	return []models.Troubleshooting{
		{ID: utils.GetUUID(), Title: "Il WiFi non funziona", Problem: "La rete CasaBrezzaWifi non compare o non si connette.", Solution: "Spegni e riaccendi il router nell'armadio dell'ingresso, attendi 2 minuti. Se il problema persiste contatta Marco.", Category: "connettivita"},
		{ID: utils.GetUUID(), Title: "Manca la corrente", Problem: "Le prese o le luci non funzionano.", Solution: "Controlla il quadro elettrico accanto alla porta d'ingresso e rialza l'interruttore generale.", Category: "elettricita"},
		{ID: utils.GetUUID(), Title: "L'acqua calda non arriva", Problem: "La doccia resta fredda.", Solution: "Verifica che lo scaldabagno in bagno sia acceso. Impiega circa 30 minuti per scaldare.", Category: "idraulica"},
	}
}
