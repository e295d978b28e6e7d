package i18n

var catalogEN = Catalog{
	Locale: EN,
	Form: FormLabels{
		LanguageTitle:       "Contract Language",
		ClientInfoTitle:     "Client Information",
		ClientName:          "Full Name",
		ContractNumber:      "Contract No.",
		Phone:               "Phone",
		EventDetailsTitle:   "Event Details",
		ActivityType:        "Activity Type",
		ServiceTime:         "Service Time",
		Day:                 "Day",
		Month:               "Month",
		Year:                "Year",
		EventAddress:        "Event Address",
		ServiceDetailsTitle: "Contracted Service Details",
		ParkingSpaces:       "Parking Spaces",
		ServiceDescription:  "Service Description (Auto-generated)",
		ContractNotes:       "Notes (Contract)",
		SoundTitle:          "Sound System",
		SoundPending:        "Pending (Client decides)",
		SoundClient:         "Sound provided by client",
		SoundBasic:          "Basic Sound (Included)",
		SoundUpgrade:        "Upgrade to Large Professional Sound (+$150 USD)",
		FinancialInfoTitle:  "Financial Information",
		TotalCost:           "Total Cost (USD)",
		RemainingBalance:    "Remaining Balance (USD)",
		DepositCheckbox:     "Deposit Required to Book",
		InvoiceNotes:        "Additional Notes for Invoice",
		BoothServiceTitle:   "Contracted Service Type",
		PhotoBoothLabel:     "PHOTO BOOTH - Digital photo booth",
		VideoBooth360Label:  "VIDEO BOOTH 360 - Revolving platform",
		AddonServicesTitle:  "Additional Services (Optional)",
		AddonSpeaker:        "Speaker to play music in the Booth area",
		AddonEarlySetup:     "\"Early Setup\"",
		AddonBranding:       "\"Full Branding\" of the Booth with the client's brand",
		AddonHire:           "Hire",
		AddonNoHire:         "Do not hire",
		AddonPending:        "Pending - Client decides",
		EventLocation:       "Event Location",
		LocationIndoor:      "Indoor",
		LocationOutdoor:     "Outdoor",
		ServiceHours:        "Service Hours (Duration)",
	},
	DJForm: DJFormLabels{
		EventDate:          "Event Date",
		StartTime:          "Start Time",
		EndTime:            "End Time",
		TotalDuration:      "Total Duration",
		GuestCount:         "Number of Guests",
		VenueName:          "Venue Name",
		VenueInfoTitle:     "Venue Information",
		EventFloor:         "Event Floor",
		VenueContact:       "Venue Contact",
		VenuePhone:         "Venue Emergency Phone",
		SetupRestrictions:  "Setup Time Restrictions",
		TechnicalTitle:     "Technical Specifications",
		SetupType:          "Required Setup Type",
		SetupPremium:       "Premium Package (up to 150 guests)",
		SetupDeluxe:        "Deluxe Package (over 150 guests)",
		ElectricalReqs:     "Electrical Requirements",
		OutdoorTitle:       "Outdoor Events",
		IsOutdoor:          "Is the event outdoors?",
		SurfaceType:        "Surface Type",
		ProtectionTent:     "Tent/canopy provided by client",
		ProtectionFixed:    "Permanent structure (gazebo/pergola)",
		ProtectionNone:     "No protection (+$150 D Show tent)",
		ProtectionLevel:    "Level area with proper drainage",
		ProtectionVehicles: "Access for setup vehicles",
		SetupColor:         "Setup Color",
		ColorBlack:         "Black",
		ColorWhite:         "White",
		Deposit50:          "Deposit (50%)",
		Balance50:          "Remaining Balance (50%)",
	},
	Doc: DocStrings{
		ContractTitle:         "SERVICE AGREEMENT",
		ClientNamePlaceholder: "Client Name",
		Intro1:                "This agreement is made between ",
		Intro2:                ", hereinafter referred to as the \"CLIENT\", and D' Show Events, hereinafter referred to as the \"PROVIDER\". Both parties agree to the following terms:",
		NotProvided:           "Not provided",
		Phone:                 "Phone",
		NoNotes:               "No additional notes.",

		DepositTitle:  "DEPOSIT AND FINAL PAYMENT",
		DepositP1With: "The CLIENT agrees to make a non-refundable deposit of $%s to reserve the services of D' Show Events.",
		DepositP2With: "The remaining balance must be paid in full BEFORE the contracted services begin on the event date.",
		DepositP3With: "In case of cancellation by the CLIENT, the following charges will apply:",
		DepositB1With: "Less than 5 calendar days before the event: 50% of the total cost will be billed (deposit credited).",
		DepositB2With: "48 hours or less before the event: 75% of the total cost will be billed (deposit credited).",
		DepositP4With: "If the PROVIDER cancels for any reason, 100% of the deposit will be returned to the CLIENT.",
		DepositP1No:   "No deposit is required to book. Signing this contract formalizes the reservation of the date and services.",
		DepositP2No:   "100% of the total cost must be paid in full BEFORE the contracted services begin on the event date.",
		DepositP3No:   "In case of cancellation by the CLIENT, the following administrative charges will apply:",
		DepositB1No:   "Less than 5 calendar days before the event: a charge of 50% of the total cost.",
		DepositB2No:   "48 hours or less before the event: a charge of 75% of the total cost.",
		DepositP4No:   "If the PROVIDER cancels, this contract will be void, and the CLIENT will incur no charges.",

		PunctualityTitle: "PUNCTUALITY AND SCHEDULE CHANGES",
		PunctualityP1:    "CLIENT's punctuality is essential. If the CLIENT fails to adhere to the stipulated time, the service may be shortened. If the delay completely prevents service delivery, the CLIENT is obligated to pay in full. Same-day schedule changes incur a $%s administrative fee.",
		PunctualityP2:    "D' Show Events will not offer refunds for services not rendered due to CLIENT delays or unavoidable external causes (traffic, unforeseen conditions). However, the PROVIDER will make reasonable efforts to adapt.",

		SoundTitle:      "SOUND SYSTEM",
		SoundOptClient:  "Selected option: Sound provided by the client. The client supplies the sound system, including two (2) microphones with stands, ensuring their optimal functionality.",
		SoundOptBasic:   "Selected option: Basic sound provided by D' Show Events. A compact professional system for up to 25 people. Included at no extra cost.",
		SoundOptUpgrade: "Selected option: Upgrade to large professional sound. A higher power system for large events. An additional charge of $%s USD applies.",
		SoundPendingP1:  "ACTION REQUIRED: Please mark your preferred sound option with an (X):",
		SoundPendingB1:  "[__] Option 1: Sound provided by the client. The client supplies the sound system, including two (2) microphones with stands, ensuring optimal functionality.",
		SoundPendingB2:  "[__] Option 2: Basic sound (included). Compact professional system for up to 25 people. Included at no extra cost.",
		SoundPendingB3:  "[__] Option 3: Upgrade to professional sound (+$%s USD). Higher power system for large events. The additional charge will be added to the remaining balance.",
		SoundP2:         "The PROVIDER is not responsible for technical or electrical failures beyond its control. If damage is caused by the PROVIDER's direct negligence, the PROVIDER will assume the costs.",

		AccessTitle: "ACCESS AND PARKING",
		AccessP1a:   "The CLIENT will cover parking costs for the PROVIDER's staff (",
		AccessP1b:   " spaces) and will arrange any necessary access permits. Failure to do so may result in delays or limitations for which the PROVIDER is not responsible.",

		RescheduleTitle: "DATE CHANGES",
		RescheduleP1:    "The CLIENT may make one (1) date change at no additional cost, subject to the PROVIDER's availability, provided it is requested in writing more than 30 days before the original event date. Additional changes or those requested with less than 30 days' notice will incur a $%s administrative fee.",
		RescheduleP2:    "All cancellations or date change requests must be made in writing (confirmed email or message) to be valid.",

		StaffImagesTitle: "USE OF STAFF IMAGERY",
		StaffImagesP1:    "The PROVIDER may use photographs or videos that exclusively feature its personnel (musicians, talents, artists) for promotion and social media, ensuring the CLIENT's privacy.",

		SafetyTitle: "STAFF SAFETY",
		SafetyP1:    "The safety of D' Show Events staff is a priority. In any situation of harassment, hostility, or danger, the staff may withdraw without penalty or refund.",

		CommsTitle:    "OFFICIAL COMMUNICATIONS",
		CommsProvider: "Provider's Contact",
		CommsClient:   "Client's Contact",
		CommsLast:     "Notifications are considered valid once receipt is confirmed by either party.",

		ClientContentTitle: "CLIENT-GENERATED CONTENT",
		ClientContentP1:    "The CLIENT and their guests are free to record and share content during the event. Tagging @dshowevents on social media is appreciated but not required.",
		ClientContentP2:    "Our Socials:",

		LiabilityTitle: "LIMITATION OF LIABILITY",
		LiabilityP1:    "The PROVIDER's total liability shall not exceed the amount paid by the CLIENT. The PROVIDER is not liable for indirect damages, loss of profits, or technical issues from the venue or third parties.",

		IndemnificationTitle: "INDEMNIFICATION",
		IndemnificationP1:    "The CLIENT will hold D' Show Events LLC harmless from any claim or damage arising from the acts, omissions, or breaches of the CLIENT or their guests.",

		ForceMajeureTitle: "FORCE MAJEURE",
		ForceMajeureP1:    "Neither party shall be liable for failure to perform due to causes beyond their reasonable control (hurricanes, blackouts, pandemics, riots, government restrictions, etc.). The affected party will notify within 48 hours. They may reschedule within 30 days or, if not possible, the PROVIDER will refund the deposit minus incurred expenses (max. 25%).",

		JurisdictionTitle: "JURISDICTION AND APPLICABLE LAW",
		JurisdictionP1:    "This agreement shall be governed by the laws of the Commonwealth of Puerto Rico. Any dispute will first be addressed through direct communication, then mediation, and finally in the courts of San Juan or Bayamón.",

		SummaryDetailsTitle: "SUMMARY OF SERVICE DETAILS",
		SummaryService:      "Service contracted:",
		SummaryTime:         "Service time:",
		SummaryTotalCost:    "Total cost:",
		SummaryBalance:      "Remaining balance:",
		SummaryAddress:      "Event address:",
		SummaryActivity:     "Activity type:",
		SummaryNotes:        "Notes:",

		SummaryPaymentTitle: "DEPOSIT AND PAYMENT SUMMARY",
		SummaryDeposit:      "Deposit:",
		SummaryParking:      "Parking spaces required:",

		ConfirmationTitle: "CONFIRMATION AND SIGNATURES",
		ConfirmationP1:    "I, ______________________, certify on this day ____________ that I understand and accept the terms and conditions set forth in this document, formalizing the hiring of services for the day %s.",

		SignatureClient:   "Signature of %s / Representative",
		SignatureProvider: "Authorized Representative",

		InvoiceSubtitle:        "Addendum to Agreement #%s",
		InvoiceBillTo:          "BILL TO",
		InvoiceFrom:            "FROM",
		InvoiceNumber:          "Invoice No.",
		InvoiceIssueDate:       "Issue Date",
		InvoiceEventDate:       "Event Date",
		InvoiceTableDesc:       "Description",
		InvoiceTableTotal:      "Total",
		InvoiceServiceDesc:     "Artistic and Technical Services",
		InvoiceServiceFallback: "As described in the contract.",
		InvoiceSoundUpgrade:    "Professional Sound Upgrade",
		InvoiceSubtotal:        "Subtotal",
		InvoiceDepositPaid:     "Deposit Paid",
		InvoiceBalanceDue:      "Balance Due",
		InvoiceNotes:           "Additional Notes",
		InvoiceNotesFallback:   "The remaining balance must be paid in full before the service begins on the event date.",
		InvoiceThankYou:        "Thank you for choosing D' Show Events!",
		InvoiceFooter:          "For questions about this invoice, please contact us at info@dshowevents.com",
	},
}
