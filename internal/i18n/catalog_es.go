package i18n

var catalogES = Catalog{
	Locale: ES,
	Form: FormLabels{
		LanguageTitle:       "Idioma del Contrato",
		ClientInfoTitle:     "Información del Cliente",
		ClientName:          "Nombre Completo",
		ContractNumber:      "No. de Contrato",
		Phone:               "Teléfono",
		EventDetailsTitle:   "Detalles del Evento",
		ActivityType:        "Tipo de Actividad",
		ServiceTime:         "Hora del Servicio",
		Day:                 "Día",
		Month:               "Mes",
		Year:                "Año",
		EventAddress:        "Dirección del Evento",
		ServiceDetailsTitle: "Detalles del Servicio Contratado",
		ParkingSpaces:       "Espacios de Estacionamiento",
		ServiceDescription:  "Descripción del Servicio (Auto-generado)",
		ContractNotes:       "Notas (Contrato)",
		SoundTitle:          "Sonido",
		SoundPending:        "Pendiente (Cliente decide)",
		SoundClient:         "Sonido provisto por el cliente",
		SoundBasic:          "Sonido básico (Incluido)",
		SoundUpgrade:        "Upgrade a sonido profesional grande (+$150 USD)",
		FinancialInfoTitle:  "Información Financiera",
		TotalCost:           "Costo Total (USD)",
		RemainingBalance:    "Balance Restante (USD)",
		DepositCheckbox:     "Aplica Depósito para reservar",
		InvoiceNotes:        "Notas Adicionales para la Factura",
		BoothServiceTitle:   "Tipo de Servicio Contratado",
		PhotoBoothLabel:     "PHOTO BOOTH - Cabina de fotos digitales",
		VideoBooth360Label:  "VIDEO BOOTH 360 - Plataforma giratoria",
		AddonServicesTitle:  "Servicios Adicionales (Opcional)",
		AddonSpeaker:        "Bocina para poner música en el área del Booth",
		AddonEarlySetup:     "\"Early Setup\" - Montaje temprano",
		AddonBranding:       "\"Full Branding\" del Booth con la marca del cliente",
		AddonHire:           "Contratar",
		AddonNoHire:         "No contratar",
		AddonPending:        "Pendiente - Cliente decide",
		EventLocation:       "Ubicación del Evento",
		LocationIndoor:      "Interior",
		LocationOutdoor:     "Exterior",
		ServiceHours:        "Horas de Servicio (Duración)",
	},
	DJForm: DJFormLabels{
		EventDate:          "Fecha del Evento",
		StartTime:          "Hora de Inicio",
		EndTime:            "Hora de Finalización",
		TotalDuration:      "Duración Total",
		GuestCount:         "Número de Invitados",
		VenueName:          "Nombre del Venue",
		VenueInfoTitle:     "Información del Venue",
		EventFloor:         "Piso del Evento",
		VenueContact:       "Contacto del Venue",
		VenuePhone:         "Teléfono de Emergencia del Venue",
		SetupRestrictions:  "Restricciones de Horario para Montaje",
		TechnicalTitle:     "Especificaciones Técnicas",
		SetupType:          "Tipo de Montaje Requerido",
		SetupPremium:       "Paquete Premium (hasta 150 personas)",
		SetupDeluxe:        "Paquete Deluxe (más de 150 personas)",
		ElectricalReqs:     "Requisitos Eléctricos",
		OutdoorTitle:       "Eventos Exteriores",
		IsOutdoor:          "¿El evento es al aire libre?",
		SurfaceType:        "Tipo de Superficie",
		ProtectionTent:     "Carpa/toldo proporcionado por cliente",
		ProtectionFixed:    "Estructura permanente (gazebo/pérgola)",
		ProtectionNone:     "Sin protección (+$150 carpa D Show)",
		ProtectionLevel:    "Área nivelada y con drenaje adecuado",
		ProtectionVehicles: "Acceso para vehículos de instalación",
		SetupColor:         "Color del Setup",
		ColorBlack:         "Negro",
		ColorWhite:         "Blanco",
		Deposit50:          "Depósito (50%)",
		Balance50:          "Balance Restante (50%)",
	},
	Doc: DocStrings{
		ContractTitle:         "CONTRATO DE SERVICIOS",
		ClientNamePlaceholder: "Nombre del Cliente",
		Intro1:                "Por una parte, ",
		Intro2:                ", de ahora en adelante denominado \"CLIENTE\", y contratando los servicios de D' Show Events, de ahora en adelante el \"PROVEEDOR\", acuerdan los siguientes términos:",
		NotProvided:           "No provisto",
		Phone:                 "Teléfono",
		NoNotes:               "Sin notas adicionales.",

		DepositTitle:  "DEPÓSITO Y PAGO FINAL",
		DepositP1With: "El cliente acuerda realizar un depósito de $%s para reservar los servicios de D' Show Events. Este depósito no es reembolsable.",
		DepositP2With: "El balance restante se pagará en su totalidad ANTES de comenzar los servicios contratados en la fecha del evento.",
		DepositP3With: "En caso de cancelación por parte del cliente, se aplicarán los siguientes cargos:",
		DepositB1With: "Menos de 5 días calendario antes del evento: se facturará un 50% del costo total (acreditando el depósito).",
		DepositB2With: "48 horas o menos antes del evento: se facturará un 75% del costo total (acreditando el depósito).",
		DepositP4With: "Si el proveedor cancela por cualquier razón, se devolverá al cliente el 100% del depósito.",
		DepositP1No:   "No se requiere depósito para reservar. La firma de este contrato formaliza la reserva de la fecha y los servicios.",
		DepositP2No:   "El pago del 100% del costo total se realizará en su totalidad ANTES de comenzar los servicios contratados en la fecha del evento.",
		DepositP3No:   "En caso de cancelación por parte del cliente, se aplicarán los siguientes cargos administrativos:",
		DepositB1No:   "Menos de 5 días calendario antes del evento: cargo del 50% del costo total.",
		DepositB2No:   "48 horas o menos antes del evento: cargo del 75% del costo total.",
		DepositP4No:   "Si el PROVEEDOR cancela, este contrato quedará sin efecto y el cliente no incurrirá en ningún cargo.",

		PunctualityTitle: "PUNTUALIDAD Y CAMBIOS DE HORARIO",
		PunctualityP1:    "La puntualidad del cliente es esencial. Si el cliente no cumple con la hora estipulada, el servicio podrá verse reducido. Si el retraso impide completamente la prestación, el cliente estará obligado al pago completo. Cambios de horario el mismo día del evento conllevan un cargo administrativo de $%s.",
		PunctualityP2:    "D' Show Events no ofrecerá reembolsos por servicios no prestados debido a retrasos del cliente, ni por causas externas inevitables (tránsito, condiciones imprevistas). No obstante, el proveedor hará esfuerzos razonables por adaptarse.",

		SoundTitle:      "SONIDO",
		SoundOptClient:  "Opción seleccionada: Sonido provisto por el cliente. El cliente suple el sistema de sonido, incluyendo dos (2) micrófonos con stands, garantizando su óptimo funcionamiento.",
		SoundOptBasic:   "Opción seleccionada: Sonido básico provisto por D' Show Events. Sistema compacto profesional para hasta 25 personas. Incluido sin costo adicional.",
		SoundOptUpgrade: "Opción seleccionada: Upgrade a sonido profesional grande. Sistema de mayor potencia para eventos grandes. Cargo adicional de $%s USD.",
		SoundPendingP1:  "ACCIÓN REQUERIDA: Por favor, marque con una (X) la opción de sonido de su preferencia:",
		SoundPendingB1:  "[__] Opción 1: Sonido provisto por el cliente. El cliente suple el sistema de sonido, incluyendo dos (2) micrófonos con stands.",
		SoundPendingB2:  "[__] Opción 2: Sonido básico (incluido). Sistema compacto profesional para hasta 25 personas.",
		SoundPendingB3:  "[__] Opción 3: Upgrade a sonido profesional (+$%s USD). Sistema de mayor potencia para eventos grandes.",
		SoundP2:         "El proveedor no se hace responsable por fallas técnicas o eléctricas fuera de su control. Si el daño es causado por negligencia directa del proveedor, este asumirá los costos.",

		AccessTitle: "ACCESO Y ESTACIONAMIENTO",
		AccessP1a:   "El cliente cubrirá los gastos de estacionamiento del personal del proveedor (",
		AccessP1b:   " espacios) y gestionará los permisos de acceso. Si no se realizan estas gestiones, los retrasos o limitaciones que resulten no serán responsabilidad del proveedor.",

		RescheduleTitle: "CAMBIOS DE FECHA",
		RescheduleP1:    "El cliente podrá realizar un (1) cambio de fecha sin costo adicional, sujeto a la disponibilidad del PROVEEDOR, siempre que se notifique por escrito con más de 30 días de antelación a la fecha original del evento. Cambios adicionales o solicitados con menos de 30 días de antelación conllevan un cargo administrativo de $%s.",
		RescheduleP2:    "Toda cancelación o solicitud de cambio de fecha debe realizarse por escrito (email o mensaje confirmado) para ser válida.",

		StaffImagesTitle: "DERECHO DE USO DE IMÁGENES DEL PERSONAL",
		StaffImagesP1:    "El proveedor podrá utilizar fotografías o videos que incluyan exclusivamente a su personal (músicos, talentos, artistas) para promoción y redes, garantizando la privacidad del cliente.",

		SafetyTitle: "SEGURIDAD DEL PERSONAL",
		SafetyP1:    "La seguridad del personal de D' Show Events es prioritaria. Ante cualquier situación de acoso, hostilidad o peligro, el personal podrá retirarse sin penalidad ni reembolso.",

		CommsTitle:    "COMUNICACIONES OFICIALES",
		CommsProvider: "Contacto del Proveedor",
		CommsClient:   "Contacto del Cliente",
		CommsLast:     "Las notificaciones serán válidas una vez confirmada su recepción por cualquiera de las partes.",

		ClientContentTitle: "CONTENIDO GENERADO POR EL CLIENTE",
		ClientContentP1:    "El cliente y sus invitados pueden grabar o compartir libremente durante el evento. Se agradece (pero no se requiere) etiquetar a @dshowevents al publicar contenido en redes.",
		ClientContentP2:    "Nuestras Redes:",

		LiabilityTitle: "LIMITACIÓN DE RESPONSABILIDAD",
		LiabilityP1:    "La responsabilidad total del proveedor no excederá el monto pagado por el cliente. No se responderá por daños indirectos, pérdida de ganancias, o problemas técnicos del venue o terceros.",

		IndemnificationTitle: "INDEMNIZACIÓN",
		IndemnificationP1:    "El cliente mantendrá indemne a D' Show Events LLC frente a cualquier reclamo o daño derivado de actos, omisiones o incumplimientos del cliente o sus invitados.",

		ForceMajeureTitle: "FUERZA MAYOR",
		ForceMajeureP1:    "Ninguna parte será responsable si el incumplimiento resulta de causas fuera de su control razonable (huracanes, apagones, pandemias, disturbios, restricciones gubernamentales, etc.). La parte afectada notificará dentro de 48 horas. Podrán reprogramar dentro de 30 días o, si no es posible, el proveedor reembolsará el depósito menos los gastos incurridos (máx. 25%).",

		JurisdictionTitle: "JURISDICCIÓN Y LEGISLACIÓN APLICABLE",
		JurisdictionP1:    "Este contrato se regirá por las leyes del Estado Libre Asociado de Puerto Rico. Cualquier disputa será tratada primero mediante comunicación directa, luego mediación, y finalmente ante los tribunales de San Juan o Bayamón.",

		SummaryDetailsTitle: "RESUMEN DE DETALLES DEL SERVICIO",
		SummaryService:      "Servicio contratado:",
		SummaryTime:         "Hora de los servicios:",
		SummaryTotalCost:    "Costo total:",
		SummaryBalance:      "Balance restante:",
		SummaryAddress:      "Dirección del evento:",
		SummaryActivity:     "Tipo de actividad:",
		SummaryNotes:        "Notas:",

		SummaryPaymentTitle: "RESUMEN DE DEPÓSITO Y PAGO",
		SummaryDeposit:      "Depósito:",
		SummaryParking:      "Estacionamientos requeridos:",

		ConfirmationTitle: "CONFIRMACIÓN Y FIRMAS",
		ConfirmationP1:    "Yo, ______________________, certifico en la fecha de hoy ____________ que entiendo y acepto los términos y condiciones establecidos en este documento, formalizando la contratación de los servicios para el día %s.",

		SignatureClient:   "Firma de %s / Representante",
		SignatureProvider: "Representante Autorizado",

		InvoiceSubtitle:        "Anexo al Contrato #%s",
		InvoiceBillTo:          "FACTURAR A",
		InvoiceFrom:            "DE",
		InvoiceNumber:          "No. Factura",
		InvoiceIssueDate:       "Fecha de Emisión",
		InvoiceEventDate:       "Fecha del Evento",
		InvoiceTableDesc:       "Descripción",
		InvoiceTableTotal:      "Total",
		InvoiceServiceDesc:     "Servicios Artísticos y Técnicos",
		InvoiceServiceFallback: "Según descrito en contrato.",
		InvoiceSoundUpgrade:    "Upgrade de Sonido Profesional",
		InvoiceSubtotal:        "Subtotal",
		InvoiceDepositPaid:     "Depósito Pagado",
		InvoiceBalanceDue:      "Balance Restante",
		InvoiceNotes:           "Notas Adicionales",
		InvoiceNotesFallback:   "El balance restante debe ser saldado en su totalidad antes del comienzo del servicio en la fecha del evento.",
		InvoiceThankYou:        "¡Gracias por elegir a D' Show Events!",
		InvoiceFooter:          "Para preguntas sobre esta factura, contáctenos en info@dshowevents.com",
	},
}
